package services

import (
	"database/sql"
	"errors"
	"log"

	"comictrack/internal/models"
	"comictrack/internal/repositories"
)

type ComicService interface {
	Create(userID int, req *models.ComicRequest) (*models.Comic, error)
	GetByID(id, userID int) (*models.Comic, error)
	Update(id, userID int, req *models.ComicRequest) (*models.Comic, error)
	Delete(id, userID int) error
	ListByUser(userID, page, pageSize int) ([]*models.Comic, int, error)
}

type comicService struct {
	repo repositories.ComicRepository
}

func NewComicService(repo repositories.ComicRepository) ComicService {
	return &comicService{repo: repo}
}

func (s *comicService) Create(userID int, req *models.ComicRequest) (*models.Comic, error) {
	comic := &models.Comic{
		Title:     req.Title,
		Chapter:   req.Chapter,
		UpdateDay: req.UpdateDay,
		Cover:     req.Cover,
		UserID:    userID,
	}
	if err := s.repo.Create(comic); err != nil {
		return nil, err
	}

	if len(req.GenreIDs) > 0 {
		if err := s.repo.SetGenres(comic.ID, req.GenreIDs); err != nil {
			log.Printf("[comic][create] set genres comicID=%d: %v", comic.ID, err)
		}
	}
	return s.withGenres(comic)
}

// GetByID is scoped to the owner; someone else's comic reads as missing.
func (s *comicService) GetByID(id, userID int) (*models.Comic, error) {
	comic, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comic.UserID != userID {
		return nil, ErrNotFound
	}
	return s.withGenres(comic)
}

func (s *comicService) Update(id, userID int, req *models.ComicRequest) (*models.Comic, error) {
	comic := &models.Comic{
		ID:        id,
		Title:     req.Title,
		Chapter:   req.Chapter,
		UpdateDay: req.UpdateDay,
		Cover:     req.Cover,
		UserID:    userID,
	}
	if err := s.repo.Update(comic); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.GenreIDs != nil {
		if err := s.repo.SetGenres(id, req.GenreIDs); err != nil {
			log.Printf("[comic][update] set genres comicID=%d: %v", id, err)
		}
	}
	return s.GetByID(id, userID)
}

func (s *comicService) Delete(id, userID int) error {
	n, err := s.repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *comicService) ListByUser(userID, page, pageSize int) ([]*models.Comic, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	comics, err := s.repo.ListByUser(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range comics {
		if _, err := s.withGenres(c); err != nil {
			return nil, 0, err
		}
	}
	total, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	return comics, total, nil
}

func (s *comicService) withGenres(comic *models.Comic) (*models.Comic, error) {
	genres, err := s.repo.GenresFor(comic.ID)
	if err != nil {
		return nil, err
	}
	comic.Genres = genres
	return comic, nil
}
