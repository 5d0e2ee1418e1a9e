package reelapi

// User is the author document embedded into posts and comments. Comments
// created through the API carry a reference (_ref) instead of the expanded user.
type User struct {
	ID       string `json:"_id,omitempty"`
	Ref      string `json:"_ref,omitempty"`
	UserName string `json:"userName,omitempty"`
	Image    string `json:"image,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Identifier returns the user id regardless of whether the user is expanded.
func (u User) Identifier() string {
	if u.ID != "" {
		return u.ID
	}
	return u.Ref
}

type Ref struct {
	Key string `json:"_key,omitempty"`
	Ref string `json:"_ref"`
}

type Asset struct {
	ID  string `json:"_id,omitempty"`
	URL string `json:"url"`
}

type Video struct {
	Asset Asset `json:"asset"`
}

type Comment struct {
	Key      string `json:"_key,omitempty"`
	Comment  string `json:"comment"`
	PostedBy User   `json:"postedBy"`
}

type Post struct {
	ID       string    `json:"_id"`
	Caption  string    `json:"caption"`
	Video    Video     `json:"video"`
	PostedBy User      `json:"postedBy"`
	Likes    []Ref     `json:"likes"`
	Comments []Comment `json:"comments"`
}
