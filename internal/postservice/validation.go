package postservice

import (
	"regexp"

	"miniblog/internal/common"
)

var (
	SlugRX = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must be between 1 and 200 characters long")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	v.Check(slug == "" || SlugRX.MatchString(slug), "slug", "must only contain lowercase letters, numbers, and hyphens")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
