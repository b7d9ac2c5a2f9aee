package domain

// Toy is the only record kind the service stores. ID is assigned by the
// store on insert and never changes afterwards.
type Toy struct {
	ID                string  `json:"_id" bson:"_id,omitempty" db:"id"`
	ToyName           string  `json:"toyName" bson:"toyName" db:"toy_name"`
	Price             float64 `json:"price" bson:"price" db:"price"`
	PhotoURL          string  `json:"photoUrl" bson:"photoUrl" db:"photo_url"`
	AvailableQuantity int     `json:"availableQuantity" bson:"availableQuantity" db:"available_quantity"`
	Ratings           float64 `json:"ratings" bson:"ratings" db:"ratings"`
	Description       string  `json:"description" bson:"description" db:"description"`
	Category          string  `json:"category" bson:"category" db:"category"`
	SellerEmail       string  `json:"sellerEmail" bson:"sellerEmail" db:"seller_email"`
}

// ToyPatch is a partial update payload. A nil field was not sent.
type ToyPatch struct {
	ToyName           *string  `json:"toyName"`
	Price             *float64 `json:"price"`
	PhotoURL          *string  `json:"photoUrl"`
	AvailableQuantity *int     `json:"availableQuantity"`
	Ratings           *float64 `json:"ratings"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
}

// PhotoLink is the photo-only projection of a Toy.
type PhotoLink struct {
	PhotoURL string `json:"photoUrl" bson:"photoUrl" db:"photo_url"`
}

// Acknowledgments mirror what a document store reports for each write.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId"`
	UpsertedCount int64   `json:"upsertedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
