package types

// Marketplace platforms a listing can point at. Random assignment only draws
// from the first three; Amazon appears in imported favorites.
const (
	SourceJD     = "京东"
	SourceTmall  = "天猫"
	SourceTaobao = "淘宝"
	SourceAmazon = "亚马逊"
)

// GiftRequest is the recipient profile a user submits for one recommendation run.
type GiftRequest struct {
	Nickname  string   `json:"nickname"`
	Gender    string   `json:"gender,options=male|female|unspecified,default=unspecified"`
	Relation  string   `json:"relation"`
	Occasion  string   `json:"occasion"`
	BudgetMin int64    `json:"budgetMin"`
	BudgetMax int64    `json:"budgetMax"`
	Interests []string `json:"interests,optional"`
	Remarks   string   `json:"remarks,optional"`
	// ProfileId pins the run to an existing recipient even if the nickname
	// changed; ForceNew creates a sibling profile for a duplicate nickname.
	ProfileId string `json:"profileId,optional"`
	ForceNew  bool   `json:"forceNew,optional"`
}

// Product is one shoppable listing. Created by a resolver tier or the mock
// generator, never mutated afterwards.
type Product struct {
	Id       string   `json:"id"`
	Title    string   `json:"title"`
	Price    int64    `json:"price"`
	ImageUrl string   `json:"imageUrl"`
	Source   string   `json:"source"`
	Link     string   `json:"link"`
	Tags     []string `json:"tags"`
	Keywords string   `json:"keywords"`
}

// AiKeywordResponse is the advisor's JSON contract: 5-8 shoppable keywords
// plus a one-sentence reasoning.
type AiKeywordResponse struct {
	Keywords  []string `json:"keywords"`
	Reasoning string   `json:"reasoning"`
}

// RecipientProfile is the persisted history for one gift recipient.
type RecipientProfile struct {
	Id            string       `json:"id"`
	Nickname      string       `json:"nickname"`
	Relation      string       `json:"relation"`
	SavedProducts []Product    `json:"savedProducts"`
	LastRequest   *GiftRequest `json:"lastRequest,omitempty"`
}

type RecommendRequest struct {
	GiftRequest
	Sort string `json:"sort,default=RECOMMENDED,options=RECOMMENDED|PRICE_ASC|PRICE_DESC"`
}

type RecommendResponse struct {
	ProfileId  string    `json:"profileId"`
	NewProfile bool      `json:"newProfile"`
	Stage      string    `json:"stage"`
	Keywords   []string  `json:"keywords"`
	Reasoning  string    `json:"reasoning"`
	Products   []Product `json:"products"`
}

type StageResponse struct {
	Stage string `json:"stage"`
}

type ListProfilesResponse struct {
	Profiles []RecipientProfile `json:"profiles"`
}

type GetProfileRequest struct {
	Id string `path:"id"`
}

type ToggleLikeRequest struct {
	Nickname string  `json:"nickname"`
	Product  Product `json:"product"`
}

type ToggleLikeResponse struct {
	Liked      bool `json:"liked"`
	SavedCount int  `json:"savedCount"`
}

type RemoveFavoriteRequest struct {
	ProfileId string `json:"profileId"`
	ProductId string `json:"productId"`
}
