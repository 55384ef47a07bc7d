package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"retail/internal/domain/model"
	"retail/internal/observability/metrics"
	repo "retail/internal/repository"
	"retail/internal/validator"
)

const (
	entityOrder        = "order"
	entityOrderDetails = "order_details"
)

type OrderUsecase struct {
	deps
	orderRepo   repo.OrderRepository
	detailsRepo repo.OrderDetailsRepository
	txm         repo.TransactionManager
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	detailsRepo repo.OrderDetailsRepository,
	txm repo.TransactionManager,
	v RecordValidator,
	m *metrics.Recorder,
	logger *slog.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		deps:        newDeps(v, m, logger),
		orderRepo:   orderRepo,
		detailsRepo: detailsRepo,
		txm:         txm,
	}
}

// GET /ordersの入力（顧客・店舗で絞り込み）
type ListOrdersInput struct {
	Page     int
	Limit    int
	ClientID *int64
	StoreID  *int64
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) (ListOutput[model.Order], error) {
	p := repo.Pagination{Page: in.Page, Limit: in.Limit}.Normalize()
	items, total, err := u.orderRepo.List(ctx, repo.OrderListFilter{
		Pagination: p,
		ClientID:   in.ClientID,
		StoreID:    in.StoreID,
	})
	if err != nil {
		return ListOutput[model.Order]{}, u.fail(ctx, entityOrder, "list", err)
	}
	return newListOutput(items, total, p), nil
}

// 明細つきで返す
func (u *OrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	o, err := u.orderRepo.FindWithDetails(ctx, id)
	if err != nil {
		return model.Order{}, u.fail(ctx, entityOrder, "get", err)
	}
	return o, nil
}

// 明細なしで注文だけ登録する
func (u *OrderUsecase) Create(ctx context.Context, rec validator.OrderRecord) (model.Order, error) {
	o, err := u.buildOrder(rec)
	if err != nil {
		return model.Order{}, err
	}

	created, err := u.orderRepo.Create(ctx, o)
	if err != nil {
		return model.Order{}, u.fail(ctx, entityOrder, "create", err)
	}
	return created, nil
}

// 注文と明細をまとめて登録する（1トランザクション）
func (u *OrderUsecase) Place(ctx context.Context, rec validator.OrderRecord, lines []validator.OrderDetailsRecord) (model.Order, error) {
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "order must have at least one line")
	}

	//注文と全明細の検証結果を1つにまとめる
	//メトリクスは明細の行番号を付ける前のフィールド名で記録する
	orderErrs, err := u.validator.Order(rec)
	if err != nil {
		return model.Order{}, contractError(err)
	}
	u.metrics.ValidationFailed(entityOrder, orderErrs.Fields())

	errs := validator.FieldErrors{}
	for field, msg := range orderErrs {
		errs[field] = msg
	}
	for i, line := range lines {
		lineErrs, err := u.validator.OrderDetails(line)
		if err != nil {
			return model.Order{}, contractError(err)
		}
		u.metrics.ValidationFailed(entityOrderDetails, lineErrs.Fields())
		for field, msg := range lineErrs {
			errs[fmt.Sprintf("lines.%d.%s", i, field)] = msg
		}
	}
	if errs.Any() {
		return model.Order{}, &ValidationFailedError{Entity: entityOrder, Fields: errs}
	}

	o, err := u.buildOrder(rec)
	if err != nil {
		return model.Order{}, err
	}
	details := make([]model.OrderDetails, 0, len(lines))
	for _, line := range lines {
		d, err := u.buildDetails(line)
		if err != nil {
			return model.Order{}, err
		}
		details = append(details, d)
	}

	var placed model.Order
	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Orders().Create(ctx, o)
		if err != nil {
			return err
		}
		items, err := r.OrderDetails().CreateBulk(ctx, created.ID, details)
		if err != nil {
			return err
		}
		created.Details = items
		placed = created
		return nil
	})
	if err != nil {
		return model.Order{}, u.fail(ctx, entityOrder, "place", err)
	}

	u.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", placed.ID), slog.Int("lines", len(placed.Details)))
	return placed, nil
}

func (u *OrderUsecase) Update(ctx context.Context, id int64, rec validator.OrderRecord) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	o, err := u.buildOrder(rec)
	if err != nil {
		return model.Order{}, err
	}
	o.ID = id

	updated, err := u.orderRepo.Update(ctx, o)
	if err != nil {
		return model.Order{}, u.fail(ctx, entityOrder, "update", err)
	}
	return updated, nil
}

// 明細はスキーマ側で削除される
func (u *OrderUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if err := u.orderRepo.Delete(ctx, id); err != nil {
		return u.fail(ctx, entityOrder, "delete", err)
	}
	return nil
}

func (u *OrderUsecase) ListDetails(ctx context.Context, orderID int64) ([]model.OrderDetails, error) {
	if _, err := u.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, u.fail(ctx, entityOrder, "list_details", err)
	}
	items, err := u.detailsRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, u.fail(ctx, entityOrderDetails, "list", err)
	}
	return items, nil
}

// 既存の注文に明細を追加する
func (u *OrderUsecase) AddDetail(ctx context.Context, orderID int64, rec validator.OrderDetailsRecord) (model.OrderDetails, error) {
	errs, err := u.validator.OrderDetails(rec)
	if err := u.check(entityOrderDetails, errs, err); err != nil {
		return model.OrderDetails{}, err
	}
	d, err := u.buildDetails(rec)
	if err != nil {
		return model.OrderDetails{}, err
	}
	d.OrderID = orderID

	created, err := u.detailsRepo.Create(ctx, d)
	if err != nil {
		return model.OrderDetails{}, u.fail(ctx, entityOrderDetails, "create", err)
	}
	return created, nil
}

func (u *OrderUsecase) UpdateDetail(ctx context.Context, orderID, detailID int64, rec validator.OrderDetailsRecord) (model.OrderDetails, error) {
	errs, err := u.validator.OrderDetails(rec)
	if err := u.check(entityOrderDetails, errs, err); err != nil {
		return model.OrderDetails{}, err
	}
	d, err := u.buildDetails(rec)
	if err != nil {
		return model.OrderDetails{}, err
	}

	//他の注文の明細は触らせない
	current, err := u.detailsRepo.FindByID(ctx, detailID)
	if err != nil {
		return model.OrderDetails{}, u.fail(ctx, entityOrderDetails, "update", err)
	}
	if current.OrderID != orderID {
		return model.OrderDetails{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	d.ID = detailID
	d.OrderID = orderID

	updated, err := u.detailsRepo.Update(ctx, d)
	if err != nil {
		return model.OrderDetails{}, u.fail(ctx, entityOrderDetails, "update", err)
	}
	return updated, nil
}

func (u *OrderUsecase) DeleteDetail(ctx context.Context, orderID, detailID int64) error {
	current, err := u.detailsRepo.FindByID(ctx, detailID)
	if err != nil {
		return u.fail(ctx, entityOrderDetails, "delete", err)
	}
	if current.OrderID != orderID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err := u.detailsRepo.Delete(ctx, detailID); err != nil {
		return u.fail(ctx, entityOrderDetails, "delete", err)
	}
	return nil
}

func (u *OrderUsecase) buildOrder(rec validator.OrderRecord) (model.Order, error) {
	errs, err := u.validator.Order(rec)
	if err := u.check(entityOrder, errs, err); err != nil {
		return model.Order{}, err
	}

	clientID, err := validator.ParseInteger("client", rec.Client)
	if err != nil {
		return model.Order{}, contractError(err)
	}
	storeID, err := validator.ParseInteger("store", rec.Store)
	if err != nil {
		return model.Order{}, contractError(err)
	}
	purchased, err := validator.ParseDateTime("purchase_date", rec.PurchaseDate, u.validator.Now().Location())
	if err != nil {
		return model.Order{}, contractError(err)
	}

	return model.Order{
		ClientID:     clientID,
		StoreID:      storeID,
		PurchaseDate: purchased,
		Address:      rec.Address,
		City:         rec.City,
		Country:      rec.Country,
		Phone:        rec.Phone,
	}, nil
}

// 検証済みの明細レコードを組み立てる
func (u *OrderUsecase) buildDetails(rec validator.OrderDetailsRecord) (model.OrderDetails, error) {
	code := strings.TrimSpace(rec.Product)
	if code == "" {
		return model.OrderDetails{}, contractError(fmt.Errorf("%w: product is required", validator.ErrContractViolation))
	}
	qty, err := validator.ParseInteger("quantity", rec.Quantity)
	if err != nil {
		return model.OrderDetails{}, contractError(err)
	}
	return model.OrderDetails{
		ProductCode: code,
		Quantity:    qty,
	}, nil
}
