package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink-api/internal/converter"
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	List(ctx context.Context, category string) (*dto.EventListResponse, error)
	ListUpcoming(ctx context.Context) (*dto.EventListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	eventRepo repository.EventRepository
}

func NewEventUsecase(db *gorm.DB, log *logrus.Logger, eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{
		db:        db,
		log:       log,
		eventRepo: eventRepo,
	}
}

func (u *eventUsecase) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Address:     req.Address,
		Category:    entity.EventCategory(req.Category),
		Status:      entity.CampStatusUpcoming,
		CreatedBy:   createdBy,
	}

	if err := u.eventRepo.Create(ctx, u.db, event); err != nil {
		u.log.Warnf("Failed to create event: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	event, err := u.eventRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find event by ID: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) List(ctx context.Context, category string) (*dto.EventListResponse, error) {
	events, err := u.eventRepo.FindAll(ctx, u.db, entity.EventCategory(category))
	if err != nil {
		u.log.Warnf("Failed to list events: %+v", err)
		return nil, err
	}

	responses := converter.EventsToResponses(events)
	return &dto.EventListResponse{Events: responses, Total: len(responses)}, nil
}

func (u *eventUsecase) ListUpcoming(ctx context.Context) (*dto.EventListResponse, error) {
	events, err := u.eventRepo.FindUpcoming(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list upcoming events: %+v", err)
		return nil, err
	}

	responses := converter.EventsToResponses(events)
	return &dto.EventListResponse{Events: responses, Total: len(responses)}, nil
}

func (u *eventUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := u.eventRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find event by ID: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.RegisteredParticipants > 0 {
		event.RegisteredParticipants = req.RegisteredParticipants
	}
	if req.BloodUnitsCollected > 0 {
		event.BloodUnitsCollected = req.BloodUnitsCollected
	}
	if req.Status != "" {
		event.Status = entity.CampStatus(req.Status)
	}

	if err := u.eventRepo.Update(ctx, u.db, event); err != nil {
		u.log.Warnf("Failed to update event: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.eventRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete event: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}
