package services

import (
	"database/sql"
	"errors"

	"comictrack/internal/models"
	"comictrack/internal/repositories"
)

type GenreService interface {
	Create(name string) (*models.Genre, error)
	GetByID(id int) (*models.Genre, error)
	List() ([]*models.Genre, error)
	Update(id int, name string) (*models.Genre, error)
	Delete(id int) error
}

type genreService struct {
	repo repositories.GenreRepository
}

func NewGenreService(repo repositories.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) Create(name string) (*models.Genre, error) {
	g := &models.Genre{Name: name}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) GetByID(id int) (*models.Genre, error) {
	g, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *genreService) List() ([]*models.Genre, error) {
	return s.repo.List()
}

func (s *genreService) Update(id int, name string) (*models.Genre, error) {
	g := &models.Genre{ID: id, Name: name}
	if err := s.repo.Update(g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *genreService) Delete(id int) error {
	return s.repo.Delete(id)
}
