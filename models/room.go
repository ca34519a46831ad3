package models

// Room as served by the upstream API. Upstream identifiers are Mongo-style
// string ids under "_id".
type Room struct {
	ID        string   `json:"_id"`
	Numero    int      `json:"numero"`
	Tipo      string   `json:"tipo"`
	Precio    float64  `json:"precio"`
	ImageUrls []string `json:"imageUrls,omitempty"`
}

// Room types the admin form accepts.
var RoomTypes = []string{"individual", "doble", "King", "Doble Superior", "King Deluxe"}

func ValidRoomType(tipo string) bool {
	for _, t := range RoomTypes {
		if t == tipo {
			return true
		}
	}
	return false
}

// RoomForm is the create/update payload for a room. Required fields are
// checked in the service so its messages reach the caller.
type RoomForm struct {
	Numero int     `json:"numero"`
	Tipo   string  `json:"tipo"`
	Precio float64 `json:"precio"`
}

// RoomView is a room enriched for the public site: image URLs resolved
// against the upstream origin and the bed description the cards show.
type RoomView struct {
	Room
	ResolvedImages []string `json:"resolvedImages"`
	Description    string   `json:"description"`
}

// AvailableRoom is a room offered for a searched date range, priced for the
// whole stay.
type AvailableRoom struct {
	Room
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}
