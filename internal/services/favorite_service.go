package services

import (
	"comictrack/internal/models"
	"comictrack/internal/repositories"
)

type FavoriteService interface {
	Add(userID, comicID int) error
	Remove(userID, comicID int) error
	ListByUser(userID int) ([]*models.Comic, error)
}

type favoriteService struct {
	repo   repositories.FavoriteRepository
	comics repositories.ComicRepository
}

func NewFavoriteService(repo repositories.FavoriteRepository, comics repositories.ComicRepository) FavoriteService {
	return &favoriteService{repo: repo, comics: comics}
}

func (s *favoriteService) Add(userID, comicID int) error {
	// the comic must exist before it can be favorited
	if _, err := s.comics.GetByID(comicID); err != nil {
		return ErrNotFound
	}
	return s.repo.Add(userID, comicID)
}

func (s *favoriteService) Remove(userID, comicID int) error {
	n, err := s.repo.Remove(userID, comicID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *favoriteService) ListByUser(userID int) ([]*models.Comic, error) {
	return s.repo.ListByUser(userID)
}
