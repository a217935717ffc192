//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/infra/cartstore"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/shared"
	"allure-rental/tests/common/builder"
	availabilitymock "allure-rental/tests/mock/availability"
	cartmock "allure-rental/tests/mock/cart"
	commandsmock "allure-rental/tests/mock/commands"
	sharedmock "allure-rental/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const cartID = "cart-7f3a"

type CartCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	catalog      *sharedmock.MockDressCatalog
	checker      *availabilitymock.MockChecker
	reservations *commandsmock.MockReservationCommands
	carts        *cartstore.MemoryStore
	cmds         commands.CartCommands

	lina *dress.Dress
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = sharedmock.NewMockDressCatalog(s.ctrl)
	s.checker = availabilitymock.NewMockChecker(s.ctrl)
	s.reservations = commandsmock.NewMockReservationCommands(s.ctrl)
	s.carts = cartstore.NewMemoryStore()
	s.cmds = commands.NewCartCommands(s.carts, s.catalog, s.checker, s.reservations)

	s.lina = &dress.Dress{
		ID:          uuid.New(),
		Name:        "Robe Lina",
		Reference:   "LIN-01",
		PricePerDay: money.FromCents(4990),
		Images:      []string{"https://cdn/lina.jpg", "https://cdn/lina-2.jpg"},
		Published:   true,
	}
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func rangePtr(start, end string) *calendar.DateRange {
	r := calendar.MustParseRange(start, end)
	return &r
}

func (s *CartCommandsTestSuite) TestPutItem() {
	ctx := context.Background()

	s.Run("undated item skips the availability check", func() {
		s.catalog.EXPECT().FindDress(gomock.Any(), s.lina.ID).Return(s.lina, nil)

		c, err := s.cmds.PutItem(ctx, commands.PutItemParams{CartID: cartID, DressID: s.lina.ID})
		s.Require().NoError(err)
		s.Require().Equal(1, c.Len())
		it := c.Items()[0]
		s.Equal("Robe Lina", it.Name)
		s.Equal("https://cdn/lina.jpg", it.Image)
		s.Nil(it.Range)
	})

	s.Run("dated item replaces the previous one", func() {
		r := rangePtr("2025-12-01", "2025-12-04")
		s.catalog.EXPECT().FindDress(gomock.Any(), s.lina.ID).Return(s.lina, nil)
		s.checker.EXPECT().IsAvailable(gomock.Any(), s.lina.ID, *r).Return(availability.Verdict{Available: true}, nil)

		c, err := s.cmds.PutItem(ctx, commands.PutItemParams{CartID: cartID, DressID: s.lina.ID, Range: r, Notes: "taille 38"})
		s.Require().NoError(err)
		s.Require().Equal(1, c.Len())
		s.True(c.Items()[0].Complete())

		stored, err := s.carts.Load(ctx, cartID)
		s.Require().NoError(err)
		s.Equal("taille 38", stored.Items()[0].Notes)
	})

	s.Run("unavailable dates are refused", func() {
		r := rangePtr("2025-12-10", "2025-12-12")
		conflict := calendar.MustParseRange("2025-12-09", "2025-12-11")
		s.catalog.EXPECT().FindDress(gomock.Any(), s.lina.ID).Return(s.lina, nil)
		s.checker.EXPECT().IsAvailable(gomock.Any(), s.lina.ID, *r).
			Return(availability.Verdict{Available: false, Conflict: &conflict}, nil)

		_, err := s.cmds.PutItem(ctx, commands.PutItemParams{CartID: cartID, DressID: s.lina.ID, Range: r})
		s.True(errs.Is(err, availability.ErrUnavailable))
	})

	s.Run("unknown dress", func() {
		id := uuid.New()
		s.catalog.EXPECT().FindDress(gomock.Any(), id).Return(nil, errs.Mark(errs.New("404"), shared.ErrDressNotFound))

		_, err := s.cmds.PutItem(ctx, commands.PutItemParams{CartID: cartID, DressID: id})
		s.True(errs.Is(err, commands.ErrDressNotFound))
	})

	s.Run("invalid cart id", func() {
		_, err := s.cmds.PutItem(ctx, commands.PutItemParams{CartID: "no spaces", DressID: s.lina.ID})
		s.ErrorIs(err, cart.ErrInvalidCartID)
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	ctx := context.Background()
	c, _ := cart.New(cartID)
	c.Put(cart.Item{DressID: s.lina.ID, Name: s.lina.Name, PricePerDay: s.lina.PricePerDay})
	s.Require().NoError(s.carts.Save(ctx, c))

	got, err := s.cmds.RemoveItem(ctx, cartID, s.lina.ID)
	s.Require().NoError(err)
	s.True(got.IsEmpty())

	_, err = s.cmds.RemoveItem(ctx, cartID, s.lina.ID)
	s.ErrorIs(err, cart.ErrItemNotFound)
}

func (s *CartCommandsTestSuite) TestCheckout() {
	ctx := context.Background()
	customer := builder.NewCustomerBuilder().BuildRaw()

	s.Run("empty cart", func() {
		_, err := s.cmds.Checkout(ctx, cartID, customer)
		s.True(errs.Is(err, commands.ErrNoItems))
	})

	s.Run("undated item", func() {
		c, _ := cart.New(cartID)
		c.Put(cart.Item{DressID: s.lina.ID, PricePerDay: s.lina.PricePerDay})
		s.Require().NoError(s.carts.Save(ctx, c))

		_, err := s.cmds.Checkout(ctx, cartID, customer)
		s.True(errs.Is(err, commands.ErrIncompleteItem))
	})

	s.Run("submits every item and empties the cart", func() {
		c, _ := cart.New(cartID)
		c.Put(cart.Item{DressID: s.lina.ID, PricePerDay: s.lina.PricePerDay, Range: rangePtr("2025-12-01", "2025-12-04"), Notes: "retouche"})
		s.Require().NoError(s.carts.Save(ctx, c))

		want := &commands.SubmitResult{ProspectID: uuid.New(), State: commands.StateCommitted}
		s.reservations.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.SubmitParams) (*commands.SubmitResult, error) {
				s.Equal(customer, p.Customer)
				s.Require().Len(p.Items, 1)
				s.Equal(s.lina.ID, p.Items[0].DressID)
				s.Equal("retouche", p.Items[0].Notes)
				s.Equal("2025-12-01", p.Items[0].Range.StartDate())
				return want, nil
			})

		got, err := s.cmds.Checkout(ctx, cartID, customer)
		s.Require().NoError(err)
		s.Equal(want.ProspectID, got.ProspectID)

		after, err := s.carts.Load(ctx, cartID)
		s.Require().NoError(err)
		s.True(after.IsEmpty())
	})

	s.Run("rejected submission keeps the cart", func() {
		c, _ := cart.New(cartID)
		c.Put(cart.Item{DressID: s.lina.ID, PricePerDay: s.lina.PricePerDay, Range: rangePtr("2025-12-01", "2025-12-04")})
		s.Require().NoError(s.carts.Save(ctx, c))

		s.reservations.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, &commands.RejectionError{State: commands.StateRejected})

		_, err := s.cmds.Checkout(ctx, cartID, customer)
		s.True(errs.Is(err, commands.ErrConflict))

		after, err := s.carts.Load(ctx, cartID)
		s.Require().NoError(err)
		s.Equal(1, after.Len())
	})
}

func TestCheckout_CartDeleteFailureDoesNotFailCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	carts := cartmock.NewMockStore(ctrl)
	reservations := commandsmock.NewMockReservationCommands(ctrl)
	cmds := commands.NewCartCommands(carts, sharedmock.NewMockDressCatalog(ctrl), availabilitymock.NewMockChecker(ctrl), reservations)

	dressID := uuid.New()
	c := cart.Reconstruct(cartID, []cart.Item{{DressID: dressID, PricePerDay: money.FromCents(5000), Range: rangePtr("2025-12-01", "2025-12-03")}})
	carts.EXPECT().Load(gomock.Any(), cartID).Return(c, nil)
	reservations.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&commands.SubmitResult{ProspectID: uuid.New(), State: commands.StateCommitted}, nil)
	carts.EXPECT().Delete(gomock.Any(), cartID).Return(errors.New("redis down"))

	res, err := cmds.Checkout(context.Background(), cartID, reservation.Customer{})
	if err != nil {
		t.Fatalf("checkout should succeed once reservations are recorded: %v", err)
	}
	if res.State != commands.StateCommitted {
		t.Fatalf("unexpected state %s", res.State)
	}
}
