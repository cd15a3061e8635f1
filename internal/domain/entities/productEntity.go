package entities

// Product is a catalogue item. The bson tag maps the canonical ID onto Mongo's _id.
type Product struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	Subcategory string  `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	SofaType    string  `json:"sofaType,omitempty" bson:"sofaType,omitempty"`
	Image       string  `json:"image" bson:"image"`
	Dimensions  string  `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Material    string  `json:"material,omitempty" bson:"material,omitempty"`
	Color       string  `json:"color,omitempty" bson:"color,omitempty"`
}

func (p Product) GetID() string { return p.ID }

func (p Product) WithID(id string) Product {
	p.ID = id
	return p
}
