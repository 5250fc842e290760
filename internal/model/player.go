package model

const defaultWhiteName, defaultBlackName = "White", "Black"

type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// NewPlayers fills in default names for blank entries.
func NewPlayers(white, black string) Players {
	if white == "" {
		white = defaultWhiteName
	}
	if black == "" {
		black = defaultBlackName
	}
	return Players{White: white, Black: black}
}

func (p Players) Name(c Color) string {
	if c == White {
		return p.White
	}
	return p.Black
}
