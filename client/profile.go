package client

// Profile is a public GitHub user profile.
type Profile struct {
	Handle      string  `json:"login"`
	DisplayName *string `json:"name,omitempty"`
	Biography   *string `json:"bio,omitempty"`
	AvatarURL   string  `json:"avatar_url"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	cp := *p
	if p.DisplayName != nil {
		name := *p.DisplayName
		cp.DisplayName = &name
	}
	if p.Biography != nil {
		bio := *p.Biography
		cp.Biography = &bio
	}
	return &cp
}

// Name returns the display name, or the handle when the user has none.
func (p Profile) Name() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.Handle
}

// Bio returns the biography or an empty string.
func (p Profile) Bio() string {
	if p.Biography == nil {
		return ""
	}
	return *p.Biography
}

// userResponse is the subset of GET /users/{username} we consume.
type userResponse struct {
	Login       *string `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

func (r userResponse) toProfile() (*Profile, error) {
	if r.Login == nil || *r.Login == "" {
		return nil, errorf(ErrDecoding, "missing login")
	}
	if r.AvatarURL == nil {
		return nil, errorf(ErrDecoding, "missing avatar_url")
	}
	if r.PublicRepos < 0 || r.Followers < 0 || r.Following < 0 {
		return nil, errorf(ErrDecoding, "negative count")
	}

	return &Profile{
		Handle:      *r.Login,
		DisplayName: r.Name,
		Biography:   r.Bio,
		AvatarURL:   *r.AvatarURL,
		PublicRepos: r.PublicRepos,
		Followers:   r.Followers,
		Following:   r.Following,
	}, nil
}
