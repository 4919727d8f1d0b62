package domain

import "time"

type Category string

const (
	CategoryYouth       Category = "Youth"
	CategoryTeenMale    Category = "Teen Male"
	CategoryTeenFemale  Category = "Teen Female"
	CategoryAdultMale   Category = "Adult Male"
	CategoryAdultFemale Category = "Adult Female"
)

var Categories = []Category{
	CategoryYouth,
	CategoryTeenMale,
	CategoryTeenFemale,
	CategoryAdultMale,
	CategoryAdultFemale,
}

func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Profile struct {
	ID        string    `json:"profile_id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateProfileInput struct {
	Name     string
	Bio      *string
	Category Category
}

type UpdateProfileInput struct {
	Name     *string
	Bio      *string
	Category *Category
}

// ProfileFilter narrows profile listings. Zero values mean "no filter".
type ProfileFilter struct {
	Name     string
	Category Category
	Page     int
	Limit    int
}
