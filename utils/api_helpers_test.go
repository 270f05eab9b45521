package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresignImageURLPassesThroughNonKeys(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", PresignImageURL(ctx, ""))
	assert.Equal(t, "https://cdn.example.com/a.jpg", PresignImageURL(ctx, "https://cdn.example.com/a.jpg"))
	assert.Equal(t, "data:image/png;base64,AAAA", PresignImageURL(ctx, "data:image/png;base64,AAAA"))
}

func TestPresignImageURLsKeepsOrder(t *testing.T) {
	urls := PresignImageURLs(context.Background(), []string{
		"https://cdn.example.com/a.jpg",
		"",
		"data:image/png;base64,AAAA",
	})
	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"",
		"data:image/png;base64,AAAA",
	}, urls)
}
