package dbconnect

import "database/sql"

// Database abstracts the destination store connection so the sync server
// can be handed a connector without knowing the driver.
type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
}
