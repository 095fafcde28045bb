package services

import (
	"context"

	"comictrack/internal/models"
	"comictrack/internal/repositories"
)

// ownerSubscriberResolver treats the comic's owner as its only subscriber.
type ownerSubscriberResolver struct {
	comics repositories.ComicRepository
}

func NewOwnerSubscriberResolver(comics repositories.ComicRepository) SubscriberResolver {
	return &ownerSubscriberResolver{comics: comics}
}

func (r *ownerSubscriberResolver) SubscribersFor(ctx context.Context, comicID int) ([]*models.User, error) {
	return r.comics.UsersForComic(ctx, comicID)
}
