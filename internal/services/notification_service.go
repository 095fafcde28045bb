package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"comictrack/internal/models"
	"comictrack/internal/repositories"
)

const updateNotificationTitle = "New Comic Update"

// SubscriberResolver answers "who should hear about this comic". The only
// implementation today resolves the comic's owner; a real subscription
// model can replace it without touching the sweep.
type SubscriberResolver interface {
	SubscribersFor(ctx context.Context, comicID int) ([]*models.User, error)
}

// Pusher is the optional out-of-band delivery channel (Telegram).
type Pusher interface {
	SendMessage(chatID int64, text string) error
}

type NotificationService interface {
	// Sweep finds comics due on today's weekday and fans out one
	// notification per (subscriber, comic), skipping pairs already
	// notified today.
	Sweep(ctx context.Context) error

	FindAll(userID, page, pageSize int, query string) ([]*models.Notification, int, error)
	MarkAsRead(notificationID, userID int) (*models.Notification, error)
	MarkAllAsRead(userID int) (int64, error)
}

type notificationService struct {
	comics repositories.ComicRepository
	repo   repositories.NotificationRepository
	subs   SubscriberResolver
	push   Pusher

	now func() time.Time
}

func NewNotificationService(
	comics repositories.ComicRepository,
	repo repositories.NotificationRepository,
	subs SubscriberResolver,
	push Pusher,
) NotificationService {
	return &notificationService{
		comics: comics,
		repo:   repo,
		subs:   subs,
		push:   push,
		now:    time.Now,
	}
}

func (s *notificationService) Sweep(ctx context.Context) error {
	today := s.now()
	weekday := int(today.Weekday())

	comics, err := s.comics.FindByUpdateDay(ctx, weekday)
	if err != nil {
		return fmt.Errorf("sweep: find comics for weekday %d: %w", weekday, err)
	}
	log.Printf("[notify][sweep] weekday=%d due_comics=%d", weekday, len(comics))

	for _, comic := range comics {
		users, err := s.subs.SubscribersFor(ctx, comic.ID)
		if err != nil {
			log.Printf("[notify][sweep] resolve subscribers comicID=%d: %v", comic.ID, err)
			continue
		}

		for _, user := range users {
			exists, err := s.repo.ExistsForDate(ctx, user.ID, comic.ID, today)
			if err != nil {
				log.Printf("[notify][sweep] dedup check userID=%d comicID=%d: %v", user.ID, comic.ID, err)
				continue
			}
			if exists {
				continue
			}

			n := &models.Notification{
				UserID:  user.ID,
				ComicID: comic.ID,
				Title:   updateNotificationTitle,
				Body:    fmt.Sprintf("A new update for %s is available!", comic.Title),
			}
			if err := s.repo.Create(ctx, n); err != nil {
				log.Printf("[notify][sweep] create userID=%d comicID=%d: %v", user.ID, comic.ID, err)
				continue
			}

			if s.push != nil && user.TelegramChatID != nil {
				// push failure never fails the sweep
				_ = s.push.SendMessage(*user.TelegramChatID, n.Body)
			}
		}
	}
	return nil
}

func (s *notificationService) FindAll(userID, page, pageSize int, query string) ([]*models.Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	notifications, err := s.repo.ListByUser(userID, pageSize, offset, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(userID, query)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (s *notificationService) MarkAsRead(notificationID, userID int) (*models.Notification, error) {
	n, err := s.repo.MarkRead(notificationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// wrong id and wrong owner look the same to the caller
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *notificationService) MarkAllAsRead(userID int) (int64, error) {
	return s.repo.MarkAllRead(userID)
}
