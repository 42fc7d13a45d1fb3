package repositories

//go:generate mockgen -source=order-repository.go -destination=mocks/order_repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/infrastructure/bd"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

const orderTable = "orders"

var orderMap = map[string]string{
	"id":         "o.id",
	"orderId":    "o.order_id",
	"status":     "o.status",
	"entity":     "o.entity",
	"assignedTo": "o.assigned_to->>'userId'",
	"createdBy":  "o.created_by->>'userId'",
	"createdAt":  "o.created_at",
	"updatedAt":  "o.updated_at",
}

var orderColumns = []string{
	"o.id", "o.order_id", "o.status", "o.entity", "o.material_name",
	"o.created_by", "o.assigned_to", "o.customer", "o.supplier", "o.materials",
	"o.quantity", "o.price_to_customer", "o.price_from_supplier",
	"o.documents", "o.advance_payment", "o.audit_logs", "o.comments",
	"o.approval_requests", "o.timeline", "o.freight_handler", "o.payment_details",
	"o.po_number", "o.delivery_terms", "o.incoterms", "o.eta", "o.notes",
	"o.hsn_code", "o.enquiry_no", "o.upc", "o.ean", "o.mpn", "o.isbn",
	"o.inventory_account", "o.inventory_valuation_method",
	"o.supplier_po_generated", "o.supplier_po_sent", "o.rfid",
	"o.created_at", "o.updated_at",
}

// OrderScope narrows a listing to the orders a user takes part in.
type OrderScope struct {
	// ParticipantUserID keeps orders created by or assigned to this user.
	ParticipantUserID string
	// Team keeps orders created by or assigned to any member of this team.
	Team string
}

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter, scope OrderScope) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, orderID string) (*entities.Order, error)
	CreateOrder(ctx context.Context, order *entities.Order) error
	SaveOrder(ctx context.Context, order *entities.Order) error
	DeleteOrder(ctx context.Context, orderID string) error
	ListForStats(ctx context.Context, since *time.Time, entity string) ([]entities.Order, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

// -----------------------------------------------------------
// SCAN
// -----------------------------------------------------------

type orderRow struct {
	entity, poNumber, deliveryTerms, incoterms, eta, notes    *string
	hsnCode, enquiryNo, upc, ean, mpn, isbn, rfid             *string
	inventoryAccount, inventoryValuationMethod                *string
	createdBy, assignedTo, customer, supplier, materials      []byte
	quantity, priceToCustomer, priceFromSupplier              []byte
	documents, advancePayment, auditLogs, comments            []byte
	approvalRequests, timeline, freightHandler, paymentDetail []byte
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	var raw orderRow
	var status string

	err := row.Scan(
		&o.ID, &o.OrderID, &status, &raw.entity, &o.MaterialName,
		&raw.createdBy, &raw.assignedTo, &raw.customer, &raw.supplier, &raw.materials,
		&raw.quantity, &raw.priceToCustomer, &raw.priceFromSupplier,
		&raw.documents, &raw.advancePayment, &raw.auditLogs, &raw.comments,
		&raw.approvalRequests, &raw.timeline, &raw.freightHandler, &raw.paymentDetail,
		&raw.poNumber, &raw.deliveryTerms, &raw.incoterms, &raw.eta, &raw.notes,
		&raw.hsnCode, &raw.enquiryNo, &raw.upc, &raw.ean, &raw.mpn, &raw.isbn,
		&raw.inventoryAccount, &raw.inventoryValuationMethod,
		&o.SupplierPOGenerated, &o.SupplierPOSent, &raw.rfid,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	o.Status = constants.OrderStatus(status)
	o.Entity = deref(raw.entity)
	o.PONumber = deref(raw.poNumber)
	o.DeliveryTerms = deref(raw.deliveryTerms)
	o.Incoterms = deref(raw.incoterms)
	o.ETA = deref(raw.eta)
	o.Notes = deref(raw.notes)
	o.HSNCode = deref(raw.hsnCode)
	o.EnquiryNo = deref(raw.enquiryNo)
	o.UPC = deref(raw.upc)
	o.EAN = deref(raw.ean)
	o.MPN = deref(raw.mpn)
	o.ISBN = deref(raw.isbn)
	o.RFID = deref(raw.rfid)
	o.InventoryAccount = deref(raw.inventoryAccount)
	o.InventoryValuationMethod = deref(raw.inventoryValuationMethod)

	snapshots := []struct {
		name string
		data []byte
		dst  interface{}
	}{
		{"createdBy", raw.createdBy, &o.CreatedBy},
		{"assignedTo", raw.assignedTo, &o.AssignedTo},
		{"customer", raw.customer, &o.Customer},
		{"supplier", raw.supplier, &o.Supplier},
		{"quantity", raw.quantity, &o.Quantity},
		{"priceToCustomer", raw.priceToCustomer, &o.PriceToCustomer},
		{"priceFromSupplier", raw.priceFromSupplier, &o.PriceFromSupplier},
		{"advancePayment", raw.advancePayment, &o.AdvancePayment},
		{"freightHandler", raw.freightHandler, &o.FreightHandler},
		{"paymentDetails", raw.paymentDetail, &o.PaymentDetails},
	}
	for _, s := range snapshots {
		if len(s.data) == 0 {
			continue
		}
		if err := json.Unmarshal(s.data, s.dst); err != nil {
			return nil, fmt.Errorf("decode order %s.%s: %w", o.OrderID, s.name, err)
		}
	}

	o.Materials = decodeCollection[entities.MaterialItem](r.logger, o.OrderID, "materials", raw.materials)
	o.AuditLogs = decodeCollection[entities.AuditLog](r.logger, o.OrderID, "auditLogs", raw.auditLogs)
	o.Comments = decodeCollection[entities.Comment](r.logger, o.OrderID, "comments", raw.comments)
	o.ApprovalRequests = decodeCollection[entities.ApprovalRequest](r.logger, o.OrderID, "approvalRequests", raw.approvalRequests)
	o.Timeline = decodeCollection[entities.TimelineEvent](r.logger, o.OrderID, "timeline", raw.timeline)
	o.Documents = decodeDocuments(r.logger, o.OrderID, raw.documents)

	return &o, nil
}

// -----------------------------------------------------------
// GET (list)
// -----------------------------------------------------------

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter, scope OrderScope) ([]entities.Order, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	narrow := func(b sq.SelectBuilder) sq.SelectBuilder {
		b = db.ApplySearch(b, filter.Search,
			"o.order_id", "o.material_name", "o.po_number",
			"o.customer->>'name'", "o.supplier->>'name'")
		if scope.ParticipantUserID != "" {
			b = b.Where(sq.Or{
				sq.Eq{"o.created_by->>'userId'": scope.ParticipantUserID},
				sq.Eq{"o.assigned_to->>'userId'": scope.ParticipantUserID},
			})
		}
		if scope.Team != "" {
			b = b.Where(sq.Or{
				sq.Expr("o.created_by->>'userId' IN (SELECT user_id FROM users WHERE team = ?)", scope.Team),
				sq.Expr("o.assigned_to->>'userId' IN (SELECT user_id FROM users WHERE team = ?)", scope.Team),
			})
		}
		return b
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := narrow(psql.Select("COUNT(o.id)").From(orderTable + " AS o"))
	countBuilder = db.ApplyListParams(countBuilder, countFilter, orderMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count orders", err)
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	baseBuilder := narrow(psql.Select(orderColumns...).From(orderTable + " AS o"))
	baseBuilder = db.ApplyListParams(baseBuilder, filter, orderMap)
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("o.created_at DESC")
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError("query orders", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// ListForStats loads orders for analytics. Document payloads are left out.
func (r *OrderRepository) ListForStats(ctx context.Context, since *time.Time, entity string) ([]entities.Order, error) {
	columns := make([]string, len(orderColumns))
	copy(columns, orderColumns)
	for i, c := range columns {
		if c == "o.documents" {
			columns[i] = "'{}'::jsonb"
		}
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(columns...).From(orderTable + " AS o").OrderBy("o.created_at DESC")
	if since != nil {
		builder = builder.Where(sq.GtOrEq{"o.created_at": *since})
	}
	if entity != "" {
		builder = builder.Where(sq.Eq{"o.entity": entity})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryOrders(ctx, query, args...)
}

// -----------------------------------------------------------
// FIND ONE
// -----------------------------------------------------------

func (r *OrderRepository) findOne(ctx context.Context, querier Querier, where sq.Eq) (*entities.Order, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(orderColumns...).From(orderTable + " AS o").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	order, err := r.scanOrder(querier.QueryRow(ctx, query, args...))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, mapStoreError("find order", err)
	}
	return order, err
}

func (r *OrderRepository) FindOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	return r.findOne(ctx, r.storage, sq.Eq{"o.order_id": orderID})
}

// -----------------------------------------------------------
// WRITE
// -----------------------------------------------------------

// orderWriteColumns are written by both insert and full-record update, in
// the order orderWriteArgs produces their values.
var orderWriteColumns = []string{
	"status", "entity", "material_name", "created_by", "assigned_to", "customer",
	"supplier", "materials", "quantity", "price_to_customer", "price_from_supplier",
	"documents", "advance_payment", "audit_logs", "comments", "approval_requests",
	"timeline", "freight_handler", "payment_details", "po_number", "delivery_terms",
	"incoterms", "eta", "notes", "hsn_code", "enquiry_no", "upc", "ean", "mpn",
	"isbn", "inventory_account", "inventory_valuation_method",
	"supplier_po_generated", "supplier_po_sent", "rfid",
}

func orderWriteArgs(o *entities.Order) ([]interface{}, error) {
	o.EnsureCollections()

	jsonFields := []interface{}{
		o.CreatedBy, o.AssignedTo, o.Customer, o.Supplier, o.Materials, o.Quantity,
		o.PriceToCustomer, o.PriceFromSupplier, o.Documents, o.AdvancePayment,
		o.AuditLogs, o.Comments, o.ApprovalRequests, o.Timeline, o.FreightHandler,
		o.PaymentDetails,
	}
	encoded := make([][]byte, len(jsonFields))
	for i, v := range jsonFields {
		b, err := jsonArg(v)
		if err != nil {
			return nil, fmt.Errorf("encode order %s: %w", o.OrderID, err)
		}
		encoded[i] = b
	}

	return []interface{}{
		string(o.Status), nullable(o.Entity), o.MaterialName,
		encoded[0], encoded[1], encoded[2], encoded[3], encoded[4], encoded[5],
		encoded[6], encoded[7], encoded[8], encoded[9], encoded[10], encoded[11],
		encoded[12], encoded[13], encoded[14], encoded[15],
		nullable(o.PONumber), nullable(o.DeliveryTerms), nullable(o.Incoterms), nullable(o.ETA),
		nullable(o.Notes), nullable(o.HSNCode), nullable(o.EnquiryNo), nullable(o.UPC),
		nullable(o.EAN), nullable(o.MPN), nullable(o.ISBN), nullable(o.InventoryAccount),
		nullable(o.InventoryValuationMethod), o.SupplierPOGenerated, o.SupplierPOSent,
		nullable(o.RFID),
	}, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	args, err := orderWriteArgs(order)
	if err != nil {
		return err
	}

	query, queryArgs, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(orderTable).
		Columns(append([]string{"order_id"}, orderWriteColumns...)...).
		Values(append([]interface{}{order.OrderID}, args...)...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.storage.QueryRow(ctx, query, queryArgs...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order %s: %w", order.OrderID, apperrors.ErrConflict)
		}
		return mapStoreError("insert order", err)
	}
	return nil
}

// SaveOrder writes the whole record back in one statement. There is no
// version check, the last writer wins.
func (r *OrderRepository) SaveOrder(ctx context.Context, order *entities.Order) error {
	args, err := orderWriteArgs(order)
	if err != nil {
		return err
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Update(orderTable)
	for i, col := range orderWriteColumns {
		builder = builder.Set(col, args[i])
	}
	query, queryArgs, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"order_id": order.OrderID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.storage.QueryRow(ctx, query, queryArgs...).Scan(&order.UpdatedAt); err != nil {
		return mapStoreError("save order", err)
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM orders WHERE order_id = $1", orderID)
	if err != nil {
		return mapStoreError("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------
// HELPERS
// -----------------------------------------------------------

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// jsonArg encodes v for a JSONB column; a nil pointer becomes SQL NULL.
func jsonArg(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return b, nil
}
