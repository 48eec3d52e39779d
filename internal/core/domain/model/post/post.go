// Package post provides the blog Post entity. Posts matter to the
// fulfillment core only as reportable targets: like orders they carry a
// durability points counter and a soft-delete availability flag.
package post

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	defaultPoints         = 100
	availabilityThreshold = 5
)

// ErrPostIsNotConstructed is returned when a Post was not created through a
// constructor.
var ErrPostIsNotConstructed = errors.New("Post must be created via NewPost constructor")

// Post is a blog entry published by a user.
type Post struct {
	id        kernel.UUID
	authorID  kernel.UUID
	title     string
	points    int
	available bool

	guard guard.ConstructorGuard
}

// NewPost creates a post with full durability points.
func NewPost(id, authorID kernel.UUID, title string) (*Post, error) {
	if err := errors.Join(
		id.Validate(),
		authorID.Validate(),
	); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Post{
		id:        id,
		authorID:  authorID,
		title:     title,
		points:    defaultPoints,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePost reconstructs a Post from persistent storage.
func RestorePost(id, authorID kernel.UUID, title string, points int, available bool) (*Post, error) {
	if err := errors.Join(
		id.Validate(),
		authorID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Post{
		id:        id,
		authorID:  authorID,
		title:     title,
		points:    points,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Post was created through a constructor.
func (p *Post) Validate() error {
	if p == nil {
		return ErrPostIsNotConstructed
	}
	return p.guard.Validate(ErrPostIsNotConstructed)
}

// ID returns the post's unique identifier.
func (p *Post) ID() kernel.UUID {
	return p.id
}

// AuthorID returns the publishing user's identifier.
func (p *Post) AuthorID() kernel.UUID {
	return p.authorID
}

// Title returns the post title.
func (p *Post) Title() string {
	return p.title
}

// Points returns the durability counter used by the report throttle.
func (p *Post) Points() int {
	return p.points
}

// IsAvailable reports the soft-delete flag.
func (p *Post) IsAvailable() bool {
	return p.available
}

// ApplyReportPenalty decrements the durability counter by one and flips the
// availability flag off once the counter falls to the threshold.
func (p *Post) ApplyReportPenalty() {
	p.points--
	if p.points <= availabilityThreshold {
		p.available = false
	}
}
