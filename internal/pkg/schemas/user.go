package schemas

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

type FavoriteItem struct {
	ID FlexInt `json:"id"`
}

// FavoriteItems never fails to decode. Malformed data becomes an empty list.
type FavoriteItems []FavoriteItem

func (f *FavoriteItems) UnmarshalJSON(b []byte) error {
	var items []FavoriteItem
	if err := json.Unmarshal(b, &items); err != nil || items == nil {
		*f = FavoriteItems{}
		return nil
	}
	*f = items
	return nil
}

func (f FavoriteItems) Contains(id int) bool {
	for _, item := range f {
		if item.ID.Int() == id {
			return true
		}
	}
	return false
}

type User struct {
	ID             FlexInt       `json:"id" validate:"required"`
	Email          string        `json:"email"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	IsStaff        bool          `json:"is_staff"`
	ProfilePhoto   NullString    `json:"profile_photo"`
	ProfessionalID FlexInt       `json:"professional_id,omitempty"`
	CarerID        FlexInt       `json:"carer_id,omitempty"`
	Description    NullString    `json:"description"`
	FavoriteItems  FavoriteItems `json:"favorite_items"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ParseUser reads a backend user document. The identity of its carer and
// professional profiles is nested in the document and lifted to the top.
func ParseUser(raw []byte) (User, error) {
	user, err := Parse[User](raw)
	if err != nil {
		return user, err
	}
	doc := gjson.ParseBytes(raw)
	user.ProfessionalID = FlexInt(doc.Get("professional.id").Int())
	user.CarerID = FlexInt(doc.Get("carer.id").Int())
	if description := doc.Get("professional.description"); description.Type == gjson.String {
		user.Description = NullString(description.String())
	}
	user.FavoriteItems = FavoriteItems{}
	if favorites := doc.Get("carer.favorite_items"); favorites.IsArray() {
		_ = json.Unmarshal([]byte(favorites.Raw), &user.FavoriteItems)
	}
	return user, nil
}

// ParseFavoriteProducts reads the carer's favorite items as full products.
func ParseFavoriteProducts(raw []byte) ([]Product, error) {
	favorites := gjson.GetBytes(raw, "carer.favorite_items")
	if !favorites.Exists() || !favorites.IsArray() {
		return []Product{}, nil
	}
	return Parse[[]Product]([]byte(favorites.Raw))
}

type ProfessionalProfile struct {
	ID         FlexInt    `json:"id" validate:"required"`
	Profession Profession `json:"profession" validate:"required,oneof=counselor psychologist"`
}

type Professional struct {
	User
	Professional ProfessionalProfile `json:"professional"`
}

type AuthUser struct {
	ID        int    `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

type AuthResponse struct {
	ID    int      `json:"id" validate:"required"`
	Role  Role     `json:"role" validate:"required,oneof=carer professional admin"`
	User  AuthUser `json:"user"`
	Token string   `json:"token" validate:"required"`
}
