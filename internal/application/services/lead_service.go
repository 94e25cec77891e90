package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// LeadServiceImpl handles public lead intake and the admin lead workflow.
// Creation triggers two best-effort side effects: an offline conversion report
// to Yandex Metrika and an email notification to the administrators. Neither
// may fail the submission.
type LeadServiceImpl struct {
	api        ports.LeadsAPI
	conversion ports.ConversionAPI
	notifier   ports.LeadNotifier
	logger     *logrus.Logger
}

func NewLeadService(api ports.LeadsAPI, conversion ports.ConversionAPI, notifier ports.LeadNotifier, logger *logrus.Logger) ports.LeadService {
	return &LeadServiceImpl{api: api, conversion: conversion, notifier: notifier, logger: logger}
}

func (s *LeadServiceImpl) Create(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error) {
	if strings.TrimSpace(req.Phone) == "" {
		return nil, lead.ErrPhoneRequired
	}

	created, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.conversion != nil && req.YmClientID != "" {
		conv := &lead.Conversion{
			ClientID: req.YmClientID,
			Phone:    created.Phone,
			Course:   created.Course,
			Datetime: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.conversion.Send(ctx, conv); err != nil {
			s.logger.WithError(err).WithField("lead_id", created.ID).Warn("Failed to report lead conversion")
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewLead(ctx, created); err != nil {
			s.logger.WithError(err).WithField("lead_id", created.ID).Warn("Failed to notify about new lead")
		}
	}

	return created, nil
}

func (s *LeadServiceImpl) List(ctx context.Context, token string) ([]lead.Lead, error) {
	return s.api.List(ctx, token)
}

func (s *LeadServiceImpl) UpdateStatus(ctx context.Context, id int, status, token string) (*lead.Lead, error) {
	return s.api.UpdateStatus(ctx, id, status, token)
}
