package posts

// Pure aggregation functions over an already-fetched post collection.
// None of them touch the store, and all are deterministic in input
// order: ties are resolved in favor of the first occurrence. Callers
// that need deterministic ties must therefore fix the input order.

// TotalLikes returns the sum of likes across posts, 0 for an empty slice.
func TotalLikes(posts []Post) int {
	total := 0
	for _, p := range posts {
		total += p.Likes
	}
	return total
}

// FavoritePost returns the post with the most likes, or nil for an empty
// slice. On ties the first post in input order wins.
func FavoritePost(posts []Post) *Post {
	var favorite *Post
	for i := range posts {
		if favorite == nil || posts[i].Likes > favorite.Likes {
			favorite = &posts[i]
		}
	}
	return favorite
}

// MostProlificAuthor returns the author with the most posts and that
// count, or nil for an empty slice. Grouping follows input order, so on
// ties the first-encountered author wins.
func MostProlificAuthor(posts []Post) *AuthorPostCount {
	counts, order := groupByAuthor(posts, func(Post) int { return 1 })
	if len(order) == 0 {
		return nil
	}
	best := pickMax(counts, order)
	return &AuthorPostCount{Author: best, Posts: counts[best]}
}

// MostLikedAuthor returns the author whose posts have the largest like
// sum and that sum, or nil for an empty slice. Same tie rule as above.
func MostLikedAuthor(posts []Post) *AuthorLikes {
	sums, order := groupByAuthor(posts, func(p Post) int { return p.Likes })
	if len(order) == 0 {
		return nil
	}
	best := pickMax(sums, order)
	return &AuthorLikes{Author: best, Likes: sums[best]}
}

// groupByAuthor folds weight over posts per author, remembering the
// order in which authors were first seen. The order slice is what keeps
// tie-breaking independent of map iteration order.
func groupByAuthor(posts []Post, weight func(Post) int) (map[string]int, []string) {
	totals := make(map[string]int, len(posts))
	order := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, seen := totals[p.Author]; !seen {
			order = append(order, p.Author)
		}
		totals[p.Author] += weight(p)
	}
	return totals, order
}

func pickMax(totals map[string]int, order []string) string {
	best := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[best] {
			best = author
		}
	}
	return best
}
