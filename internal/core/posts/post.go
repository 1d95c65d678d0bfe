package posts

import (
	"time"
)

// Post represents a blog post.
// OwnerID is the post side of the user/post relation; the reciprocal
// entry lives in the owner's post set and is maintained by the service.
// OwnerID is nil only on legacy rows created before ownership existed.
type Post struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Title     string     `json:"title"`
	Author    string     `json:"author,omitempty"`
	URL       string     `json:"url"`
	Owner     *OwnerView `json:"owner,omitempty"`
	OwnerID   *int64     `json:"-"`
	Comments  []string   `json:"comments"`
	ID        int64      `json:"id"`
	Likes     int        `json:"likes"`
}

// OwnerView is the lightweight projection of a post's owner exposed on
// reads. The password hash never appears here.
type OwnerView struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes,omitempty"` // defaults to 0 when absent
}

// UpdateLikesRequest represents input for updating a post's like count.
// Likes is the only field the update path accepts; anything else in the
// payload is ignored, never merged.
type UpdateLikesRequest struct {
	Likes int `json:"likes"`
}

// AddCommentRequest represents input for appending a comment to a post
type AddCommentRequest struct {
	Comment string `json:"comment"`
}

// AuthorPostCount is the result of MostProlificAuthor
type AuthorPostCount struct {
	Author string `json:"author"`
	Posts  int    `json:"posts"`
}

// AuthorLikes is the result of MostLikedAuthor
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// StatsView is the aggregation snapshot over the whole post collection.
// Pointer fields are null when the collection is empty.
type StatsView struct {
	TotalLikes         int              `json:"totalLikes"`
	FavoritePost       *Post            `json:"favoritePost"`
	MostProlificAuthor *AuthorPostCount `json:"mostProlificAuthor"`
	MostLikedAuthor    *AuthorLikes     `json:"mostLikedAuthor"`
}
