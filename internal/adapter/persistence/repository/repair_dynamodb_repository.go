package repository

import (
	"context"
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

const (
	defaultRepairsTableName   = "repairs"
	defaultDecisionsTableName = "approval_decisions"

	customerIndex   = "customer_id-index"
	technicianIndex = "technician_id-index"
	batchIndex      = "batch_id-index"
	statusIndex     = "status-index"
)

type repairItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	TechnicianID       string `dynamodbav:"technician_id,omitempty"`
	UnitNumber         string `dynamodbav:"unit_number"`
	DamageType         string `dynamodbav:"damage_type"`
	Origin             string `dynamodbav:"origin"`
	Status             string `dynamodbav:"status"`
	Price              string `dynamodbav:"price"`
	PriceOverridden    bool   `dynamodbav:"price_overridden"`
	OverrideReason     string `dynamodbav:"override_reason,omitempty"`
	BatchID            string `dynamodbav:"batch_id"`
	BreakNumber        int    `dynamodbav:"break_number"`
	TotalBreaksInBatch int    `dynamodbav:"total_breaks_in_batch"`
	InvoiceID          string `dynamodbav:"invoice_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type decisionItem struct {
	RepairID  string `dynamodbav:"repair_id"`
	ID        string `dynamodbav:"id"`
	Approved  bool   `dynamodbav:"approved"`
	DecidedBy string `dynamodbav:"decided_by"`
	DecidedAt string `dynamodbav:"decided_at"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

// RepairDynamoRepository persists RepairRecord entities in DynamoDB.
//
// Table requirements:
//   - repairs: PK id (string), GSIs customer_id-index, technician_id-index,
//     batch_id-index, status-index
//   - approval_decisions: PK repair_id (string); one decision per repair
//
// A batch commit is one TransactWriteItems carrying the N repair puts and the
// versioned counter updates, so either everything lands or nothing does.

type RepairDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	decisionsTable string
	countersTable  string
}

var _ interfaces.IRepairRepository = (*RepairDynamoRepository)(nil)

func NewRepairDynamoRepository(ddb *dynamodb.Client) *RepairDynamoRepository {
	return &RepairDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
		decisionsTable: getenvDefault("DECISIONS_TABLE", defaultDecisionsTableName),
		countersTable:  getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *RepairDynamoRepository) CommitBatch(
	ctx context.Context,
	repairs []entities.RepairRecord,
	unit entities.UnitRepairCounter,
	total entities.CustomerRepairTotal,
) error {
	items := make([]types.TransactWriteItem, 0, len(repairs)+2)

	for _, rec := range repairs {
		av, err := attributevalue.MarshalMap(toRepairItem(rec))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	// Counter updates are conditioned on the version read before pricing.
	// The counter values arrive with the post-batch count and the read
	// version; a mismatch cancels the whole transaction.
	items = append(items,
		counterUpdate(r.countersTable, unitCounterKey(unit.CustomerID, unit.UnitNumber), unit.Count, unit.Version),
		counterUpdate(r.countersTable, customerTotalKey(total.CustomerID), total.Count, total.Version),
	)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCancel(err) {
			return interfaces.ErrCounterConflict
		}
		return err
	}
	return nil
}

func counterUpdate(table, key string, newCount int, readVersion int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(table),
			Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: key}},
			UpdateExpression:    aws.String("SET #count = :count, #version = :newv"),
			ConditionExpression: aws.String("attribute_not_exists(#id) OR #version = :oldv"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#count":   "repair_count",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":count": &types.AttributeValueMemberN{Value: intToString(newCount)},
				":newv":  &types.AttributeValueMemberN{Value: int64ToString(readVersion + 1)},
				":oldv":  &types.AttributeValueMemberN{Value: int64ToString(readVersion)},
			},
		},
	}
}

func isConditionalCancel(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func (r *RepairDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairRecord{}, nil
	}

	var it repairItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairRecord{}, err
	}
	return fromRepairItem(it)
}

func (r *RepairDynamoRepository) ListByBatchID(ctx context.Context, batchID string) ([]entities.RepairRecord, error) {
	return r.queryIndex(ctx, batchIndex, "batch_id", batchID, nil)
}

func (r *RepairDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.RepairRecord, error) {
	return r.queryIndex(ctx, customerIndex, "customer_id", customerID, nil)
}

func (r *RepairDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairRecord, error) {
	return r.queryIndex(ctx, technicianIndex, "technician_id", technicianID, nil)
}

func (r *RepairDynamoRepository) ListRequested(ctx context.Context) ([]entities.RepairRecord, error) {
	return r.queryIndex(ctx, statusIndex, "status", string(entities.RepairStatusRequested), nil)
}

func (r *RepairDynamoRepository) ListCompletedWithoutInvoice(ctx context.Context, customerID string) ([]entities.RepairRecord, error) {
	filter := &filterSpec{
		expression: "#status = :completed AND attribute_not_exists(#invoice_id)",
		names: map[string]string{
			"#status":     "status",
			"#invoice_id": "invoice_id",
		},
		values: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.RepairStatusCompleted)},
		},
	}
	return r.queryIndex(ctx, customerIndex, "customer_id", customerID, filter)
}

type filterSpec struct {
	expression string
	names      map[string]string
	values     map[string]types.AttributeValue
}

func (r *RepairDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string, filter *filterSpec) ([]entities.RepairRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	}
	if filter != nil {
		input.FilterExpression = aws.String(filter.expression)
		input.ExpressionAttributeNames = mergeNames(input.ExpressionAttributeNames, filter.names)
		for k, v := range filter.values {
			input.ExpressionAttributeValues[k] = v
		}
	}

	var records []entities.RepairRecord
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it repairItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			rec, err := fromRepairItem(it)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return records, nil
}

// UpdateStatus performs the conditional transition. When a decision
// accompanies it (customer resolution of a PENDING repair) both writes go
// through one transaction. A failed status condition reads back as a zero
// record with nil error.
func (r *RepairDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.RepairStatus,
	upd interfaces.StatusUpdate,
) (entities.RepairRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if upd.AssignTechnicianID != "" {
		expr += ", #technician_id = :technician_id"
		names["#technician_id"] = "technician_id"
		values[":technician_id"] = &types.AttributeValueMemberS{Value: upd.AssignTechnicianID}
	}
	condition := "attribute_exists(#id) AND #status = :from"

	if upd.Decision == nil {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.tableName),
			Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
			ConditionExpression:       aws.String(condition),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				return entities.RepairRecord{}, nil
			}
			return entities.RepairRecord{}, err
		}
		var it repairItem
		if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
			return entities.RepairRecord{}, err
		}
		return fromRepairItem(it)
	}

	decisionAV, err := attributevalue.MarshalMap(toDecisionItem(*upd.Decision))
	if err != nil {
		return entities.RepairRecord{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
					ConditionExpression:       aws.String(condition),
					UpdateExpression:          aws.String(expr),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.decisionsTable),
					Item:      decisionAV,
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancel(err) {
			return entities.RepairRecord{}, nil
		}
		return entities.RepairRecord{}, err
	}
	return r.GetByID(ctx, id)
}

func toRepairItem(rec entities.RepairRecord) repairItem {
	return repairItem{
		ID:                 rec.ID,
		CustomerID:         rec.CustomerID,
		TechnicianID:       rec.TechnicianID,
		UnitNumber:         rec.UnitNumber,
		DamageType:         rec.DamageType,
		Origin:             string(rec.Origin),
		Status:             string(rec.Status),
		Price:              rec.Price.String(),
		PriceOverridden:    rec.PriceOverridden,
		OverrideReason:     rec.OverrideReason,
		BatchID:            rec.BatchID,
		BreakNumber:        rec.BreakNumber,
		TotalBreaksInBatch: rec.TotalBreaksInBatch,
		InvoiceID:          rec.InvoiceID,
		CreatedAt:          rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRepairItem(it repairItem) (entities.RepairRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.RepairRecord{}, fmt.Errorf("repair %s: invalid created_at %q: %w", it.ID, it.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.RepairRecord{}, fmt.Errorf("repair %s: invalid updated_at %q: %w", it.ID, it.UpdatedAt, err)
	}
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.RepairRecord{}, fmt.Errorf("repair %s: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.RepairRecord{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		TechnicianID:       it.TechnicianID,
		UnitNumber:         it.UnitNumber,
		DamageType:         it.DamageType,
		Origin:             entities.RepairOrigin(it.Origin),
		Status:             entities.RepairStatus(it.Status),
		Price:              price,
		PriceOverridden:    it.PriceOverridden,
		OverrideReason:     it.OverrideReason,
		BatchID:            it.BatchID,
		BreakNumber:        it.BreakNumber,
		TotalBreaksInBatch: it.TotalBreaksInBatch,
		InvoiceID:          it.InvoiceID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

func toDecisionItem(d entities.ApprovalDecision) decisionItem {
	return decisionItem{
		RepairID:  d.RepairID,
		ID:        d.ID,
		Approved:  d.Approved,
		DecidedBy: d.DecidedBy,
		DecidedAt: d.DecidedAt.UTC().Format(time.RFC3339Nano),
		Notes:     d.Notes,
	}
}
