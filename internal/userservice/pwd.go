package userservice

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

func (p *Password) Set(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return err
	}

	p.Plain = pwd
	p.hash = hash

	return nil
}

// Matches reports whether pwd matches the stored hash. A malformed hash
// compares as false rather than erroring.
func (p *Password) Matches(pwd string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(pwd)) == nil
}
