package commands

import (
	"fmt"
	"strings"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errs.New("reservation request has no items")
	ErrIncompleteItem  = errs.New("reservation item is missing its dress or dates")
	ErrInvalidCustomer = errs.New("invalid customer details")
	ErrDressNotFound   = errs.New("dress not found")
	ErrConflict        = errs.New("reservation conflict")
	ErrCommitFailed    = errs.New("failed to record reservation")

	ErrCheckFailed = availability.ErrCheckFailed
)

// SubmitState is the lifecycle of one submission.
type SubmitState string

const (
	StateValidating           SubmitState = "validating"
	StateCheckingAvailability SubmitState = "checking_availability"
	StateCommitting           SubmitState = "committing"
	StateCommitted            SubmitState = "committed"
	StateRejected             SubmitState = "rejected"
)

func (s SubmitState) IsFinal() bool {
	return s == StateCommitted || s == StateRejected
}

const (
	ReasonUnavailable        = "unavailable"
	ReasonDuplicateInRequest = "duplicate_in_request"
	ReasonConflictOnCommit   = "conflict_on_commit"
)

type SubmitItem struct {
	DressID uuid.UUID
	Range   calendar.DateRange
	Notes   string
}

type SubmitParams struct {
	Customer reservation.Customer
	Items    []SubmitItem
}

type ReservationLine struct {
	ID      uuid.UUID
	DressID uuid.UUID
	Range   calendar.DateRange
	Quote   reservation.Quote
}

type SubmitResult struct {
	ProspectID   uuid.UUID
	Reservations []ReservationLine
	Total        money.Money
	State        SubmitState
}

type ItemFailure struct {
	DressID  uuid.UUID
	Range    calendar.DateRange
	Reason   string
	Conflict *calendar.DateRange
}

// RejectionError is returned when at least one item cannot be reserved.
// Nothing has been recorded when it is returned.
type RejectionError struct {
	State    SubmitState
	Failures []ItemFailure
}

func (e *RejectionError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("dress %s %s: %s", f.DressID, f.Range, f.Reason))
	}
	return ErrConflict.Error() + ": " + strings.Join(parts, "; ")
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrConflict
}
