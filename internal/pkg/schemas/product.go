package schemas

type ProductOwnerUser struct {
	ID FlexInt `json:"id"`
}

type ProductOwner struct {
	ID   FlexInt          `json:"id" validate:"required"`
	User ProductOwnerUser `json:"user"`
}

type Product struct {
	ID            FlexInt      `json:"id" validate:"required"`
	Name          string       `json:"name" validate:"required"`
	Price         FlexFloat    `json:"price"`
	Location      string       `json:"location"`
	Category      string       `json:"category"`
	Description   string       `json:"description"`
	Image         NullString   `json:"image"`
	ContactNumber string       `json:"contact_number"`
	FacebookURL   string       `json:"facebook_url"`
	CreatedBy     ProductOwner `json:"created_by"`
	Flagged       bool         `json:"flagged"`
}

// OwnedBy reports whether the carer created the product.
func (p Product) OwnedBy(carerID int) bool {
	return carerID != 0 && p.CreatedBy.ID.Int() == carerID
}

func (p Product) CreatedByUser(userID int) bool {
	return userID != 0 && p.CreatedBy.User.ID.Int() == userID
}
