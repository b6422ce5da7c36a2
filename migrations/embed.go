// Package migrations embeds the goose SQL migrations for contact_submissions
// and user_reviews.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
