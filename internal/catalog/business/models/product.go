package models

import (
	"time"

	"github.com/stripe/stripe-go/v82"
)

// Product mirrors one provider catalog product. Field values are taken
// from the provider verbatim, only coerced to local types.
type Product struct {
	ID          string
	Description string
	Features    []string
	Image       string
	Metadata    map[string]string
	Name        string
	UnitLabel   string
	Created     time.Time
}

func ProductFromStripe(p *stripe.Product) Product {
	features := make([]string, 0, len(p.MarketingFeatures))
	for _, feature := range p.MarketingFeatures {
		if feature == nil {
			continue
		}
		features = append(features, feature.Name)
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	return Product{
		ID:          p.ID,
		Description: p.Description,
		Features:    features,
		Image:       image,
		Metadata:    p.Metadata,
		Name:        p.Name,
		UnitLabel:   p.UnitLabel,
		Created:     epochSecondsToTime(p.Created),
	}
}

// epochSecondsToTime converts the provider's epoch-seconds stamp into a
// millisecond-based time value.
func epochSecondsToTime(seconds int64) time.Time {
	return time.UnixMilli(seconds * 1000)
}
