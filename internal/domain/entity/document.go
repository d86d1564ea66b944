package entity

// Document is a schema-less record as stored in a collection. The store
// assigns its identifier under FieldID.
type Document map[string]interface{}

const (
	FieldID = "_id"

	// products
	FieldEmail     = "email"
	FieldTitle     = "title"
	FieldImage     = "image"
	FieldPriceMin  = "price_min"
	FieldPriceMax  = "price_max"
	FieldCreatedAt = "created_at"

	// bids
	FieldBuyerEmail = "buyer_email"
	FieldBidPrice   = "bid_price"
	FieldProduct    = "product"
)

// WithoutID returns a shallow copy of d with any client supplied id removed.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == FieldID {
			continue
		}
		out[k] = v
	}
	return out
}
