package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindUserByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "name", "bio", "theme_color", "theme", "created_at", "updated_at"}).
			AddRow("user-1", "alice", "alice@example.com", "Alice", "hi", "#ff0000", "dark", now, now))

	user, err := repo.FindUserByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.ThemeKey("dark"), user.Theme)
	assert.Nil(t, user.AvatarURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UsernameExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE username = $1`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.UsernameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_UpdateUserMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(context.Background(), &entity.User{ID: "user-1", Name: "Alice"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSocialLinkRepository_ReplaceWithEmptySetOnlyClears(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSocialLinkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "social_links" WHERE user_id = $1`)).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.ReplaceSocialLinks(context.Background(), "user-1", entity.SocialLinks{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialLinkRepository_FindSocialLinksByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSocialLinkRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "social_links" WHERE user_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "network", "url", "visible"}).
			AddRow("user-1", "instagram", "https://instagram.com/alice", true).
			AddRow("user-1", "tiktok", "", false))

	links, err := repo.FindSocialLinksByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, links, 2)
	assert.True(t, links[entity.SocialNetwork("instagram")].Visible)
	assert.Equal(t, 1, links.FilledCount())
}

func TestProductRepository_UpdateOtherUsersProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct(context.Background(), &entity.Product{ID: uuid.New(), UserID: "intruder", Title: "x"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ListActiveOrdersByPosition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE user_id = $1 AND active = $2 ORDER BY sort_order ASC, created_at DESC`)).
		WithArgs("user-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "affiliate_url", "active", "clicks", "sort_order"}).
			AddRow(id, "user-1", "Camera", "https://shop.example.com/cam", true, 7, 2))

	products, err := repo.ListActiveProductsByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].Order)
	assert.Equal(t, int64(7), products[0].Clicks)
}

func TestCouponRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "coupons" WHERE id = $1 AND user_id = $2`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCoupon(context.Background(), uuid.New(), "user-1")
	assert.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func TestPartnerRepository_CountActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPartnerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "partners" WHERE user_id = $1 AND active = $2`)).
		WithArgs("user-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountActivePartnersByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestItemRepository_RejectsUnknownType(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewItemRepository(db)

	_, err := repo.FindItemRef(context.Background(), entity.ItemType("banner"), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidItemType)
}

func TestItemRepository_FindItemRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id FROM "coupons" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(id, "user-9"))

	ref, err := repo.FindItemRef(context.Background(), entity.ItemTypeCoupon, id)
	require.NoError(t, err)
	assert.Equal(t, "user-9", ref.UserID)
	assert.Equal(t, entity.ItemTypeCoupon, ref.Type)
}

func TestItemRepository_SetItemOrderUnowned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "partners" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetItemOrder(context.Background(), entity.ItemTypePartner, "user-1", uuid.New(), 3)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemRepository_IncrementClicks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET "clicks"=clicks + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementClicks(context.Background(), entity.ItemTypeProduct, id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CreateLogUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "analytics_logs"`)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.CreateLog(context.Background(), &entity.AnalyticsLog{ItemID: uuid.New(), Type: entity.ItemTypeProduct, UserID: "ghost"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAnalyticsRepository_CountClicksByType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT type, COUNT(*) AS clicks FROM "analytics_logs" WHERE user_id = $1 AND created_at >= $2 GROUP BY "type"`)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "clicks"}).
			AddRow("coupon", 2).
			AddRow("product", 5))

	counts, err := repo.CountClicksByType(context.Background(), "user-1", time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, []entity.ClickCount{
		{Type: entity.ItemTypeCoupon, Clicks: 2},
		{Type: entity.ItemTypeProduct, Clicks: 5},
	}, counts)
}

func TestSubscriptionRepository_UpdateBillingPeriodUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_subscriptions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBillingPeriod(context.Background(), "sub_123", "price_pro", time.Now())
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}

func TestSubscriptionRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)
	customer, sub, price := "cus_1", "sub_1", "price_pro"
	end := time.Now().Add(30 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_subscriptions"`) + `.*ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSubscription(context.Background(), &entity.UserSubscription{
		UserID:                 "user-1",
		StripeCustomerID:       &customer,
		StripeSubscriptionID:   &sub,
		StripePriceID:          &price,
		StripeCurrentPeriodEnd: &end,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateInactiveProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "products"`)).
		WithArgs(id, "user-1", "Camera", nil, "https://shop.example.com/cam", nil, nil,
			false, 0, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	product := &entity.Product{ID: id, UserID: "user-1", Title: "Camera", AffiliateURL: "https://shop.example.com/cam", Active: false}
	require.NoError(t, repo.CreateProduct(context.Background(), product))
	assert.False(t, product.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_CreateWithEmptyLinkStoresNull(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "coupons"`)).
		WithArgs(id, "user-1", "Acme", "SAVE10", "10%", nil,
			false, 0, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	coupon := &entity.Coupon{ID: id, UserID: "user-1", StoreName: "Acme", Code: "SAVE10", Discount: "10%", Link: entity.NullIfEmpty("")}
	require.NoError(t, repo.CreateCoupon(context.Background(), coupon))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_FindReturnsNullLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "coupons" WHERE id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "store_name", "code", "discount", "link", "active"}).
			AddRow(id.String(), "user-1", "Acme", "SAVE10", "10%", nil, false))

	coupon, err := repo.FindCouponByIDAndUser(context.Background(), id, "user-1")
	require.NoError(t, err)
	assert.Nil(t, coupon.Link)
	assert.False(t, coupon.Active)
}

func TestPartnerRepository_CreateInactivePartner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPartnerRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "partners"`)).
		WithArgs(id, "user-1", "Acme", "https://acme.example.com", nil,
			false, 0, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	partner := &entity.Partner{ID: id, UserID: "user-1", Name: "Acme", SiteURL: "https://acme.example.com"}
	require.NoError(t, repo.CreatePartner(context.Background(), partner))
	assert.NoError(t, mock.ExpectationsWereMet())
}
