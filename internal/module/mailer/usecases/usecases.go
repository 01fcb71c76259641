package usecases

import (
	"context"
	"fmt"

	"homezy-service/internal/module/mailer/models/entity"
	"homezy-service/internal/module/mailer/models/request"
	"homezy-service/internal/module/mailer/repositories"
	"homezy-service/internal/module/mailer/templates"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	SendVerification(ctx context.Context, payload *request.Verification) error
	SendReceipt(ctx context.Context, payload *request.BookingEmail) error
	SendCancellation(ctx context.Context, payload *request.BookingEmail) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

type bookingView struct {
	FullName     string
	ListingTitle string
	CheckIn      string
	CheckOut     string
	Guests       int
	Price        string
}

func newBookingView(p *request.BookingEmail) bookingView {
	return bookingView{
		FullName:     p.FullName,
		ListingTitle: p.ListingTitle,
		CheckIn:      p.CheckIn,
		CheckOut:     p.CheckOut,
		Guests:       p.Guests,
		Price:        fmt.Sprintf("%.2f", p.Price),
	}
}

func (u *usecase) SendVerification(ctx context.Context, payload *request.Verification) error {
	link, err := u.repo.GenerateVerificationLink(ctx, payload.Email)
	if err != nil {
		return err
	}

	html, err := templates.Render(templates.Verification, struct {
		FullName string
		Link     string
	}{payload.FullName, link})
	if err != nil {
		return err
	}

	return u.send(ctx, payload.Email, payload.FullName, "Verify your Homezy account", html)
}

func (u *usecase) SendReceipt(ctx context.Context, payload *request.BookingEmail) error {
	html, err := templates.Render(templates.Receipt, newBookingView(payload))
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking receipt: %s", payload.ListingTitle)
	return u.send(ctx, payload.Email, payload.FullName, subject, html)
}

func (u *usecase) SendCancellation(ctx context.Context, payload *request.BookingEmail) error {
	html, err := templates.Render(templates.Cancellation, newBookingView(payload))
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking cancelled: %s", payload.ListingTitle)
	return u.send(ctx, payload.Email, payload.FullName, subject, html)
}

func (u *usecase) send(ctx context.Context, to, name, subject, html string) error {
	return u.repo.SendEmail(ctx, entity.Email{
		Sender:      u.repo.Sender(),
		To:          []entity.Address{{Name: name, Email: to}},
		Subject:     subject,
		HTMLContent: html,
	})
}
