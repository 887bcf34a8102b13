package constants

// CatalogEntry is one item of a fixed display catalog. The ID is the stored
// value; names follow the original Japanese UI.
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryFallback is applied when an imported or legacy record carries no
// recognizable category.
const CategoryFallback = "other"

var PackingCategories = []CatalogEntry{
	{ID: "clothing", Name: "衣類", Icon: "shirt"},
	{ID: "toiletries", Name: "トイレタリー", Icon: "bath"},
	{ID: "electronics", Name: "電子機器", Icon: "laptop"},
	{ID: "documents", Name: "書類", Icon: "file"},
	{ID: "medicine", Name: "薬・医療品", Icon: "pill"},
	{ID: "accessories", Name: "小物・アクセサリー", Icon: "ring"},
	{ID: "food", Name: "食品・飲料", Icon: "utensils"},
	{ID: "other", Name: "その他", Icon: "box"},
}

var BudgetCategories = []CatalogEntry{
	{ID: "transportation", Name: "交通費", Icon: "car"},
	{ID: "accommodation", Name: "宿泊費", Icon: "hotel"},
	{ID: "food", Name: "食費", Icon: "utensils"},
	{ID: "activities", Name: "アクティビティ", Icon: "hiking"},
	{ID: "shopping", Name: "ショッピング", Icon: "shopping-bag"},
	{ID: "other", Name: "その他", Icon: "receipt"},
}

// EventIcons is the fixed icon catalog events may reference by ID.
var EventIcons = []CatalogEntry{
	// Transport
	{ID: "plane", Name: "飛行機", Icon: "plane"},
	{ID: "train", Name: "電車", Icon: "train"},
	{ID: "bus", Name: "バス", Icon: "bus"},
	{ID: "car", Name: "車", Icon: "car"},
	{ID: "ship", Name: "船", Icon: "ship"},
	{ID: "walking", Name: "徒歩", Icon: "walking"},
	{ID: "bicycle", Name: "自転車", Icon: "bicycle"},
	{ID: "subway", Name: "地下鉄", Icon: "subway"},
	// Accommodation
	{ID: "hotel", Name: "ホテル", Icon: "hotel"},
	{ID: "bed", Name: "宿泊", Icon: "bed"},
	{ID: "home", Name: "家", Icon: "home"},
	{ID: "building", Name: "建物", Icon: "building"},
	// Food
	{ID: "restaurant", Name: "レストラン", Icon: "utensils"},
	{ID: "coffee", Name: "カフェ", Icon: "coffee"},
	{ID: "bar", Name: "バー", Icon: "glass-cheers"},
	{ID: "icecream", Name: "アイス", Icon: "ice-cream"},
	{ID: "shopping", Name: "ショッピング", Icon: "shopping-bag"},
	// Activity
	{ID: "camera", Name: "観光", Icon: "camera"},
	{ID: "landmark", Name: "名所", Icon: "landmark"},
	{ID: "nature", Name: "自然", Icon: "tree"},
	{ID: "mountain", Name: "山", Icon: "mountain"},
	{ID: "beach", Name: "ビーチ", Icon: "umbrella-beach"},
	{ID: "pool", Name: "プール", Icon: "swimming-pool"},
	{ID: "ticket", Name: "チケット", Icon: "ticket"},
	{ID: "theater", Name: "劇場", Icon: "theater-masks"},
	{ID: "music", Name: "音楽", Icon: "music"},
	{ID: "movie", Name: "映画", Icon: "film"},
	// Other
	{ID: "location", Name: "場所", Icon: "map-marker"},
	{ID: "info", Name: "情報", Icon: "info-circle"},
	{ID: "warning", Name: "注意", Icon: "exclamation-triangle"},
	{ID: "star", Name: "お気に入り", Icon: "star"},
}

func contains(entries []CatalogEntry, id string) bool {
	for _, entry := range entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

func IsValidPackingCategory(id string) bool {
	return contains(PackingCategories, id)
}

func IsValidBudgetCategory(id string) bool {
	return contains(BudgetCategories, id)
}

func IsValidEventIcon(id string) bool {
	return contains(EventIcons, id)
}
