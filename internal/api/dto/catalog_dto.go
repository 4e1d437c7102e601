package dto

// ProductPayload is the create/update body for products.
type ProductPayload struct {
	Name        string   `json:"name"`
	Weight      float64  `json:"weight"`
	Smells      []string `json:"smells"`
	Gifts       []string `json:"gifts"`
	Price       float64  `json:"price"`
	ProductType string   `json:"productType"`
	Quantity    int      `json:"quantity"`
	Skin        string   `json:"skin"`
	Status      bool     `json:"status"`
	Activated   bool     `json:"activated"`
}

// CatalogItemPayload is the create/update body for product types, smells and
// gifts.
type CatalogItemPayload struct {
	Name      string `json:"name"`
	Status    bool   `json:"status"`
	Activated bool   `json:"activated"`
}

// Thumbnail carries an inline image for account listings.
type Thumbnail struct {
	Src string `json:"src"`
}

// AccountPayload is the create/update body for game account listings.
type AccountPayload struct {
	UserName    string     `json:"userName"`
	Password    string     `json:"password"`
	Rank        string     `json:"rank"`
	Price       float64    `json:"price"`
	Hero        int        `json:"hero"`
	Gold        int        `json:"gold"`
	Skin        int        `json:"skin"`
	PearlPoints int        `json:"pearl_points"`
	Thumbnail   *Thumbnail `json:"thumbnail"`
	Status      string     `json:"status"`
	Activated   bool       `json:"activated"`
}
