package model

// Heating type codes stored on estates and criteria.
const (
	HeatingUnderfloor = iota
	HeatingRadiators
	HeatingHeatPump
	HeatingFurnace
	HeatingBaseboard
	HeatingWallHeaters
	HeatingGasFurnace
)

// GeoPoint is a latitude/longitude pair attached to an estate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// Estate is the core document stored in the `estates` collection.
// Optional fields carry omitempty on both tags so that unset values are
// omitted on write rather than stored as zero/null.
type Estate struct {
	ID                string    `json:"id,omitempty" firestore:"id,omitempty"`
	Name              string    `json:"name,omitempty" firestore:"name,omitempty"`
	Price             float64   `json:"price,omitempty" firestore:"price,omitempty"`
	IsActive          bool      `json:"isActive,omitempty" firestore:"isActive,omitempty"`
	UserID            string    `json:"userId,omitempty" firestore:"userId,omitempty"`
	Country           string    `json:"country,omitempty" firestore:"country,omitempty"`
	City              string    `json:"city,omitempty" firestore:"city,omitempty"`
	Bedrooms          int       `json:"bedrooms,omitempty" firestore:"bedrooms,omitempty"`
	Bathrooms         int       `json:"bathrooms,omitempty" firestore:"bathrooms,omitempty"`
	HabitableArea     float64   `json:"habitableArea,omitempty" firestore:"habitableArea,omitempty"`
	Score             float64   `json:"score,omitempty" firestore:"score,omitempty"` // aggregate rating, 0-5
	Description       string    `json:"description,omitempty" firestore:"description,omitempty"`
	Zip               string    `json:"zip,omitempty" firestore:"zip,omitempty"`
	Street            string    `json:"street,omitempty" firestore:"street,omitempty"`
	Number            string    `json:"number,omitempty" firestore:"number,omitempty"`
	Region            string    `json:"region,omitempty" firestore:"region,omitempty"`
	AddressExtra      string    `json:"addressExtra,omitempty" firestore:"addressExtra,omitempty"`
	HeatingType       *int      `json:"heatingType,omitempty" firestore:"heatingType,omitempty"`
	ConstructionYear  int       `json:"constructionYear,omitempty" firestore:"constructionYear,omitempty"`
	HasPrivateParking bool      `json:"hasPrivateParking,omitempty" firestore:"hasPrivateParking,omitempty"`
	HasExtraStorage   bool      `json:"hasExtraStorage,omitempty" firestore:"hasExtraStorage,omitempty"`
	PictureURLs       []string  `json:"pictureUrls,omitempty" firestore:"pictureUrls,omitempty"`
	Coordinates       *GeoPoint `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	Geohash           string    `json:"geohash,omitempty" firestore:"geohash,omitempty"`

	// MatchingScore is derived per request when browsing in matching mode.
	// It is never persisted.
	MatchingScore float64 `json:"matchingScore,omitempty" firestore:"-"`
}

// SearchCriteria is a saved search profile stored under
// `users/{userId}/criterias`. Price range, country, city and bedrooms are
// required; everything else is an optional matching dimension.
type SearchCriteria struct {
	ID                string  `json:"id,omitempty" firestore:"id,omitempty"`
	PriceMin          float64 `json:"priceMin" firestore:"priceMin"`
	PriceMax          float64 `json:"priceMax" firestore:"priceMax"`
	Country           string  `json:"country,omitempty" firestore:"country,omitempty"`
	City              string  `json:"city,omitempty" firestore:"city,omitempty"`
	Bedrooms          int     `json:"bedrooms,omitempty" firestore:"bedrooms,omitempty"`
	Bathrooms         int     `json:"bathrooms,omitempty" firestore:"bathrooms,omitempty"`
	HabitableArea     float64 `json:"habitableArea,omitempty" firestore:"habitableArea,omitempty"`
	Zip               string  `json:"zip,omitempty" firestore:"zip,omitempty"`
	HeatingType       *int    `json:"heatingType,omitempty" firestore:"heatingType,omitempty"`
	ConstructionYear  int     `json:"constructionYear,omitempty" firestore:"constructionYear,omitempty"`
	HasPrivateParking bool    `json:"hasPrivateParking,omitempty" firestore:"hasPrivateParking,omitempty"`
	HasExtraStorage   bool    `json:"hasExtraStorage,omitempty" firestore:"hasExtraStorage,omitempty"`
}

// Range bounds a numeric filter dimension. A nil bound means unconstrained
// on that side.
type Range struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// FilterValues is the transient, session-scoped set of browse filters.
// It is never persisted.
type FilterValues struct {
	MinScore         float64 `json:"minScore,omitempty"`
	Price            *Range  `json:"price,omitempty"`
	Bedrooms         *Range  `json:"bedrooms,omitempty"`
	Bathrooms        *Range  `json:"bathrooms,omitempty"`
	HabitableSurface *Range  `json:"habitableSurface,omitempty"`
	ConstructionYear *Range  `json:"constructionYear,omitempty"`
	IncludeParking   bool    `json:"includeParking,omitempty"`
	IncludeStorage   bool    `json:"includeStorage,omitempty"`
	WithPictures     bool    `json:"withPictures,omitempty"`
}

// IsZero reports whether no filter dimension is set.
func (f FilterValues) IsZero() bool {
	return f.MinScore == 0 && f.Price == nil && f.Bedrooms == nil &&
		f.Bathrooms == nil && f.HabitableSurface == nil && f.ConstructionYear == nil &&
		!f.IncludeParking && !f.IncludeStorage && !f.WithPictures
}

// Comment is a message, optionally carrying a 1-5 score, attached to either
// an estate or a user profile. EstateID and ProfileID are mutually exclusive.
type Comment struct {
	ID             string `json:"id,omitempty" firestore:"id,omitempty"`
	EstateID       string `json:"estateId,omitempty" firestore:"estateId,omitempty"`
	ProfileID      string `json:"profileId,omitempty" firestore:"profileId,omitempty"`
	UserID         string `json:"userId,omitempty" firestore:"userId,omitempty"`
	Message        string `json:"message,omitempty" firestore:"message,omitempty"`
	Score          int    `json:"score,omitempty" firestore:"score,omitempty"` // unset for the subject owner's own comments
	CreateDateTime string `json:"createDateTime,omitempty" firestore:"createDateTime,omitempty"`
}

// User is the profile document stored in the `users` collection, keyed by
// the auth user id.
type User struct {
	ID                 string  `json:"id,omitempty" firestore:"id,omitempty"`
	DisplayName        string  `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Email              string  `json:"email,omitempty" firestore:"email,omitempty"`
	EmailVerified      bool    `json:"emailVerified,omitempty" firestore:"emailVerified,omitempty"`
	PhoneNumber        string  `json:"phoneNumber,omitempty" firestore:"phoneNumber,omitempty"`
	PhotoURL           string  `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Description        string  `json:"description,omitempty" firestore:"description,omitempty"`
	Score              float64 `json:"score,omitempty" firestore:"score,omitempty"`
	FacebookURL        string  `json:"facebookUrl,omitempty" firestore:"facebookUrl,omitempty"`
	InstagramURL       string  `json:"instagramUrl,omitempty" firestore:"instagramUrl,omitempty"`
	LinkedInURL        string  `json:"linkedInUrl,omitempty" firestore:"linkedInUrl,omitempty"`
	WorkPlace          string  `json:"workPlace,omitempty" firestore:"workPlace,omitempty"`
	HighestEducation   string  `json:"highestEducation,omitempty" firestore:"highestEducation,omitempty"`
	From               string  `json:"from,omitempty" firestore:"from,omitempty"`
	Birthday           string  `json:"birthday,omitempty" firestore:"birthday,omitempty"`
	RelationshipStatus *int    `json:"relationshipStatusType,omitempty" firestore:"relationshipStatusType,omitempty"`
	Gender             *int    `json:"gender,omitempty" firestore:"gender,omitempty"`
}

// Request message status codes.
const (
	MessagePending = 0
	MessageSent    = 1
	MessageSeen    = 2
)

// Request is a rental request from a prospective tenant to an estate owner,
// stored in the `requests` collection. LastMessage is denormalized from the
// messages sub-collection for list views.
type Request struct {
	ID          string `json:"id,omitempty" firestore:"id,omitempty"`
	EstateID    string `json:"estateId,omitempty" firestore:"estateId,omitempty"`
	EstateName  string `json:"estateName,omitempty" firestore:"estateName,omitempty"`
	SenderID    string `json:"senderId,omitempty" firestore:"senderId,omitempty"`
	SenderName  string `json:"senderName,omitempty" firestore:"senderName,omitempty"`
	SenderPhoto string `json:"senderPhoto,omitempty" firestore:"senderPhoto,omitempty"`
	ReceiverID  string `json:"receiverId,omitempty" firestore:"receiverId,omitempty"`
	IsAccepted  bool   `json:"isAccepted,omitempty" firestore:"isAccepted,omitempty"`
	IsPending   bool   `json:"isPending,omitempty" firestore:"isPending,omitempty"`
	LastMessage string `json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
}

// RequestMessage is a chat message stored under `requests/{id}/messages`.
type RequestMessage struct {
	ID       string `json:"id,omitempty" firestore:"id,omitempty"`
	SendDate string `json:"sendDate,omitempty" firestore:"sendDate,omitempty"`
	SenderID string `json:"senderId,omitempty" firestore:"senderId,omitempty"`
	Status   int    `json:"status" firestore:"status"`
	Text     string `json:"text,omitempty" firestore:"text,omitempty"`
}

// Session identifies the calling user for a single request. It replaces the
// original client's module-level profile singleton and is threaded through
// handlers explicitly.
type Session struct {
	UserID   string `json:"userId"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// RouteMeta maps a client route to its page title and whether the tab bar
// chrome is visible on it.
type RouteMeta struct {
	Path          string `json:"path"`
	Title         string `json:"title"`
	ChromeVisible bool   `json:"chromeVisible"`
}
