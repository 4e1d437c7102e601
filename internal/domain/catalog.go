package domain

import "time"

// Entity collection names used as keys against the document store gateway.
const (
	EntityProduct     = "products"
	EntityProductType = "productTypes"
	EntitySmell       = "smells"
	EntityGift        = "gifts"
	EntityAccount     = "accounts"
	EntityUser        = "users"
)

// Audit carries the bookkeeping fields shared by all catalog documents.
type Audit struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitempty"`
	CreatedBy string    `bson:"createdBy" json:"createdBy,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitempty"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy,omitempty"`
}

// Product is a sellable catalog item referencing its type, scent variants
// and bundled gifts by id.
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Slug        string   `bson:"slug" json:"slug"`
	Weight      float64  `bson:"weight,omitempty" json:"weight,omitempty"`
	Smells      []string `bson:"smells,omitempty" json:"smells,omitempty"`
	Gifts       []string `bson:"gifts,omitempty" json:"gifts,omitempty"`
	Price       float64  `bson:"price,omitempty" json:"price,omitempty"`
	ProductType string   `bson:"productType,omitempty" json:"productType,omitempty"`
	Quantity    int      `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Skin        string   `bson:"skin,omitempty" json:"skin,omitempty"`
	Status      bool     `bson:"status" json:"status"`
	Activated   bool     `bson:"activated" json:"activated"`
	Deleted     bool     `bson:"deleted" json:"deleted"`
	Audit       `bson:",inline"`
}

// CatalogItem is the shared document shape for the name-keyed side
// collections: product types, smells and gifts. The owning collection is
// picked by the entity name at the gateway, not by the Go type.
type CatalogItem struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Name      string `bson:"name" json:"name"`
	Slug      string `bson:"slug" json:"slug"`
	Status    bool   `bson:"status" json:"status"`
	Activated bool   `bson:"activated" json:"activated"`
	Deleted   bool   `bson:"deleted" json:"deleted"`
	Audit     `bson:",inline"`
}

// Account is a resellable game account listing. Its password is stored
// hashed like user credentials even though it is catalog data.
type Account struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	UserName     string  `bson:"userName" json:"userName"`
	Slug         string  `bson:"slug" json:"slug"`
	PasswordHash string  `bson:"password" json:"-"`
	Rank         string  `bson:"rank,omitempty" json:"rank,omitempty"`
	Price        float64 `bson:"price,omitempty" json:"price,omitempty"`
	Hero         int     `bson:"hero,omitempty" json:"hero,omitempty"`
	Gold         int     `bson:"gold,omitempty" json:"gold,omitempty"`
	Skin         int     `bson:"skin,omitempty" json:"skin,omitempty"`
	PearlPoints  int     `bson:"pearl_points,omitempty" json:"pearl_points,omitempty"`
	Thumbnail    string  `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Status       string  `bson:"status,omitempty" json:"status,omitempty"`
	Activated    bool    `bson:"activated" json:"activated"`
	Deleted      bool    `bson:"deleted" json:"deleted"`
	Audit        `bson:",inline"`
}
