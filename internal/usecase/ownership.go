package usecase

import "smartserver/pkg/errors"

const (
	ProductsCollection = "products"
	BidsCollection     = "bids"

	recentProductsLimit = 6
)

var recentProductFields = []string{"title", "image", "price_min", "price_max"}

// checkOwner rejects a request for someone else's records. An empty
// requested owner is allowed and means "no owner filter".
func checkOwner(requested, verified string) error {
	if requested != "" && requested != verified {
		return errors.Forbidden("Forbidden access", nil)
	}
	return nil
}

func ownerFilter(field, value string) map[string]interface{} {
	if value == "" {
		return nil
	}
	return map[string]interface{}{field: value}
}
