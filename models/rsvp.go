package models

// RSVPStatus tracks a table reservation through the venue's workflow.
type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "pending"
	RSVPStatusConfirmed RSVPStatus = "confirmed"
	RSVPStatusCancelled RSVPStatus = "cancelled"
	RSVPStatusCompleted RSVPStatus = "completed"
)

const (
	DefaultGroupSize = 2
	MinGroupSize     = 1
	MaxGroupSize     = 20
)

// RSVPPackages is the fixed set of bookable packages.
var RSVPPackages = map[string]bool{
	"Special Table": true,
	"VIP Table":     true,
	"Mogul Table":   true,
	"Special":       true,
	"VIP":           true,
	"Mogul":         true,
}

func IsValidRSVPPackage(pkg string) bool {
	return RSVPPackages[pkg]
}

// RSVP is a table reservation request.
type RSVP struct {
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        Optional[string] `json:"phone"`
	Package      string           `json:"package"`
	GroupSize    int              `json:"group_size"`
	BottleChoice Optional[string] `json:"bottle_choice"`
	Notes        Optional[string] `json:"notes"`
	Status       RSVPStatus       `json:"status"`
}

// RSVPRequest is the public reservation payload. The package is not checked here so
// the caller can reject unknown packages before anything else.
type RSVPRequest struct {
	Name         string
	Email        string
	Phone        Optional[string]
	Package      string
	GroupSize    int
	BottleChoice Optional[string]
	Notes        Optional[string]
}

func DecodeRSVPRequest(doc Document) (RSVPRequest, error) {
	r := newFieldReader(doc)
	req := RSVPRequest{
		Name:         r.RequiredString("name"),
		Email:        r.RequiredString("email"),
		Phone:        r.OptionalString("phone"),
		Package:      r.RequiredString("package"),
		GroupSize:    r.Int("group_size", DefaultGroupSize),
		BottleChoice: r.OptionalString("bottle_choice"),
		Notes:        r.OptionalString("notes"),
	}
	return req, r.Err()
}

// NewRSVP builds a pending reservation and checks it.
func NewRSVP(req RSVPRequest) (RSVP, error) {
	rsvp := RSVP{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Package:      req.Package,
		GroupSize:    req.GroupSize,
		BottleChoice: req.BottleChoice,
		Notes:        req.Notes,
		Status:       RSVPStatusPending,
	}
	return rsvp, rsvp.check(newFieldReader(nil))
}

func DecodeRSVP(doc Document) (RSVP, error) {
	r := newFieldReader(doc)
	rsvp := RSVP{
		Name:         r.RequiredString("name"),
		Email:        r.RequiredString("email"),
		Phone:        r.OptionalString("phone"),
		Package:      r.RequiredString("package"),
		GroupSize:    r.Int("group_size", DefaultGroupSize),
		BottleChoice: r.OptionalString("bottle_choice"),
		Notes:        r.OptionalString("notes"),
		Status:       RSVPStatus(r.StringDefault("status", string(RSVPStatusPending))),
	}
	return rsvp, rsvp.check(r)
}

func (v RSVP) check(r *fieldReader) error {
	if v.Package != "" && !IsValidRSVPPackage(v.Package) {
		r.fail("package", "must be one of Special Table, VIP Table, Mogul Table, Special, VIP, Mogul")
	}
	checkRange(r, "group_size", v.GroupSize, "min=1,max=20", "must be between 1 and 20")
	return r.Err()
}

func (v RSVP) Kind() Kind { return KindRSVP }

func (v RSVP) Document() Document {
	return Document{
		"name":          v.Name,
		"email":         v.Email,
		"phone":         v.Phone.Any(),
		"package":       v.Package,
		"group_size":    v.GroupSize,
		"bottle_choice": v.BottleChoice.Any(),
		"notes":         v.Notes.Any(),
		"status":        string(v.Status),
	}
}
