package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCafe             Category = "cafe"
	CategoryIzakaya          Category = "izakaya"
	CategoryApparel          Category = "apparel"
	CategoryConvenienceStore Category = "convenience_store"
	CategoryGasStation       Category = "gas_station"
	CategorySupermarket      Category = "supermarket"
	CategoryShoppingMall     Category = "shopping_mall"
	CategoryFamilyRestaurant Category = "family_restaurant"
	CategoryHotel            Category = "hotel"
)

// Categories lists every supported category in display order.
var Categories = []Category{
	CategoryCafe,
	CategoryIzakaya,
	CategoryApparel,
	CategoryConvenienceStore,
	CategoryGasStation,
	CategorySupermarket,
	CategoryShoppingMall,
	CategoryFamilyRestaurant,
	CategoryHotel,
}

var categoryLabels = map[Category]string{
	CategoryCafe:             "カフェ",
	CategoryIzakaya:          "居酒屋",
	CategoryApparel:          "アパレル",
	CategoryConvenienceStore: "コンビニ",
	CategoryGasStation:       "ガソリンスタンド",
	CategorySupermarket:      "スーパー",
	CategoryShoppingMall:     "ショッピングモール",
	CategoryFamilyRestaurant: "ファミレス",
	CategoryHotel:            "ホテル",
}

func (c Category) String() string {
	return string(c)
}

// Label returns the display name shown in the dashboard.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts either the slug or the display name.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || s == c.Label() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
