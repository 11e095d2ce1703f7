package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID         string   `dynamodbav:"id"`
	CustomerID string   `dynamodbav:"customer_id"`
	RepairIDs  []string `dynamodbav:"repair_ids"`
	Total      string   `dynamodbav:"total"`
	Status     string   `dynamodbav:"status"`
	CreatedAt  string   `dynamodbav:"created_at"`
	PaidAt     string   `dynamodbav:"paid_at,omitempty"`

	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	PaymentPayloadRaw string `dynamodbav:"payment_payload_raw,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string)
//
// Create stamps invoice_id onto every referenced repair in the same
// transaction; a repair already carrying an invoice_id cancels the whole
// write, so a repair can never land on two invoices.

type InvoiceDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	repairsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		repairsTable: getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(inv.RepairIDs)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	for _, repairID := range inv.RepairIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.repairsTable),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: repairID}},
				UpdateExpression:    aws.String("SET #invoice_id = :invoice_id"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#invoice_id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#invoice_id": "invoice_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":invoice_id": &types.AttributeValueMemberS{Value: inv.ID},
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id, providerPaymentID string, payload json.RawMessage) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at, #provider_payment_id = :ppid, #payment_payload_raw = :payload"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#status":              "status",
			"#paid_at":             "paid_at",
			"#provider_payment_id": "provider_payment_id",
			"#payment_payload_raw": "payment_payload_raw",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: now},
			":ppid":    &types.AttributeValueMemberS{Value: providerPaymentID},
			":payload": &types.AttributeValueMemberS{Value: string(payload)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:                inv.ID,
		CustomerID:        inv.CustomerID,
		RepairIDs:         inv.RepairIDs,
		Total:             inv.Total.String(),
		Status:            string(inv.Status),
		CreatedAt:         inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		ProviderPaymentID: inv.ProviderPaymentID,
		PaymentPayloadRaw: string(inv.PaymentPayloadRaw),
	}
	if inv.PaidAt != nil {
		it.PaidAt = inv.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s: invalid created_at %q: %w", it.ID, it.CreatedAt, err)
	}
	total, err := decimal.NewFromString(it.Total)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s: invalid total %q: %w", it.ID, it.Total, err)
	}

	inv := entities.Invoice{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		RepairIDs:         it.RepairIDs,
		Total:             total,
		Status:            entities.InvoiceStatus(it.Status),
		CreatedAt:         createdAt,
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt)
		if err != nil {
			return entities.Invoice{}, fmt.Errorf("invoice %s: invalid paid_at %q: %w", it.ID, it.PaidAt, err)
		}
		inv.PaidAt = &paidAt
	}
	if it.PaymentPayloadRaw != "" {
		inv.PaymentPayloadRaw = json.RawMessage(it.PaymentPayloadRaw)
	}
	return inv, nil
}
