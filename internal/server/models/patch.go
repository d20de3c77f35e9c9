package models

// Optional carries a value together with an explicit presence flag so that
// "absent" and "empty" can be told apart.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// AccountPatch is a partial update of an Account. Only fields with Set=true
// are written.
type AccountPatch struct {
	Name            Optional[string]
	Nickname        Optional[string]
	PasswordHash    Optional[string]
	About           Optional[string]
	ProfileImageURL Optional[string]
}

// Empty reports whether the patch changes nothing.
func (p AccountPatch) Empty() bool {
	return !p.Name.Set && !p.Nickname.Set && !p.PasswordHash.Set && !p.About.Set && !p.ProfileImageURL.Set
}

// Apply writes the present fields of p onto a.
func (p AccountPatch) Apply(a *Account) {
	if v, ok := p.Name.Get(); ok {
		a.Name = v
	}
	if v, ok := p.Nickname.Get(); ok {
		a.Nickname = v
	}
	if v, ok := p.PasswordHash.Get(); ok {
		a.PasswordHash = v
	}
	if v, ok := p.About.Get(); ok {
		a.About = v
	}
	if v, ok := p.ProfileImageURL.Get(); ok {
		a.ProfileImageURL = v
	}
}
