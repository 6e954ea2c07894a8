package models

// MembershipTier is the member's loyalty level.
type MembershipTier string

const TierStandard MembershipTier = "standard"

// Member is a signed-up club member. The list fields carry the member's cultural
// preferences and always encode as arrays.
type Member struct {
	Email                string           `json:"email"`
	Phone                Optional[string] `json:"phone"`
	IGHandle             Optional[string] `json:"ig_handle"`
	FirstName            Optional[string] `json:"first_name"`
	LastName             Optional[string] `json:"last_name"`
	Tier                 MembershipTier   `json:"tier"`
	SavedMixtapes        []string         `json:"saved_mixtapes"`
	SavedPhotos          []string         `json:"saved_photos"`
	MusicFavoritesSongs  []string         `json:"music_favorites_songs"`
	MusicFavoritesAlbums []string         `json:"music_favorites_albums"`
	MusicFavoritesLyrics []string         `json:"music_favorites_lyrics"`
	FavoriteDJs          []string         `json:"favorite_djs"`
}

// MembershipSignup is the public signup payload; it cannot choose a tier.
type MembershipSignup struct {
	Email     string
	Phone     Optional[string]
	IGHandle  Optional[string]
	FirstName Optional[string]
	LastName  Optional[string]
}

func DecodeMembershipSignup(doc Document) (MembershipSignup, error) {
	r := newFieldReader(doc)
	s := MembershipSignup{
		Email:     r.RequiredString("email"),
		Phone:     r.OptionalString("phone"),
		IGHandle:  r.OptionalString("ig_handle"),
		FirstName: r.OptionalString("first_name"),
		LastName:  r.OptionalString("last_name"),
	}
	return s, r.Err()
}

// NewMember builds a standard-tier member with empty preference lists.
func NewMember(s MembershipSignup) Member {
	return Member{
		Email:                s.Email,
		Phone:                s.Phone,
		IGHandle:             s.IGHandle,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		Tier:                 TierStandard,
		SavedMixtapes:        []string{},
		SavedPhotos:          []string{},
		MusicFavoritesSongs:  []string{},
		MusicFavoritesAlbums: []string{},
		MusicFavoritesLyrics: []string{},
		FavoriteDJs:          []string{},
	}
}

func DecodeMember(doc Document) (Member, error) {
	r := newFieldReader(doc)
	m := Member{
		Email:                r.RequiredString("email"),
		Phone:                r.OptionalString("phone"),
		IGHandle:             r.OptionalString("ig_handle"),
		FirstName:            r.OptionalString("first_name"),
		LastName:             r.OptionalString("last_name"),
		Tier:                 MembershipTier(r.StringDefault("tier", string(TierStandard))),
		SavedMixtapes:        r.StringList("saved_mixtapes"),
		SavedPhotos:          r.StringList("saved_photos"),
		MusicFavoritesSongs:  r.StringList("music_favorites_songs"),
		MusicFavoritesAlbums: r.StringList("music_favorites_albums"),
		MusicFavoritesLyrics: r.StringList("music_favorites_lyrics"),
		FavoriteDJs:          r.StringList("favorite_djs"),
	}
	return m, r.Err()
}

func (m Member) Kind() Kind { return KindMember }

func (m Member) Document() Document {
	return Document{
		"email":                  m.Email,
		"phone":                  m.Phone.Any(),
		"ig_handle":              m.IGHandle.Any(),
		"first_name":             m.FirstName.Any(),
		"last_name":              m.LastName.Any(),
		"tier":                   string(m.Tier),
		"saved_mixtapes":         nonNil(m.SavedMixtapes),
		"saved_photos":           nonNil(m.SavedPhotos),
		"music_favorites_songs":  nonNil(m.MusicFavoritesSongs),
		"music_favorites_albums": nonNil(m.MusicFavoritesAlbums),
		"music_favorites_lyrics": nonNil(m.MusicFavoritesLyrics),
		"favorite_djs":           nonNil(m.FavoriteDJs),
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
