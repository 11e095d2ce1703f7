package repository

import (
	"context"
	"strconv"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "repair_counters"

type counterItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
	UnitNumber string `dynamodbav:"unit_number,omitempty"`
	Count      int    `dynamodbav:"repair_count"`
	Version    int64  `dynamodbav:"version"`
}

// CounterDynamoRepository reads repair counters. It never writes: increments
// only happen inside the batch transaction owned by RepairDynamoRepository.
//
// Table requirements:
//   - repair_counters: PK id (string)
//     "C#<customer>#U#<unit>" for per-unit counters,
//     "C#<customer>#TOTAL" for the customer's lifetime total.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) GetUnitCounter(ctx context.Context, customerID, unitNumber string) (entities.UnitRepairCounter, error) {
	it, err := r.get(ctx, unitCounterKey(customerID, unitNumber))
	if err != nil {
		return entities.UnitRepairCounter{}, err
	}
	// Missing row reads as zero count, version 0; the transactional write
	// creates it with an existence condition so first writers still serialize.
	return entities.UnitRepairCounter{
		CustomerID: customerID,
		UnitNumber: unitNumber,
		Count:      it.Count,
		Version:    it.Version,
	}, nil
}

func (r *CounterDynamoRepository) GetCustomerTotal(ctx context.Context, customerID string) (entities.CustomerRepairTotal, error) {
	it, err := r.get(ctx, customerTotalKey(customerID))
	if err != nil {
		return entities.CustomerRepairTotal{}, err
	}
	return entities.CustomerRepairTotal{
		CustomerID: customerID,
		Count:      it.Count,
		Version:    it.Version,
	}, nil
}

func (r *CounterDynamoRepository) get(ctx context.Context, key string) (counterItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return counterItem{}, err
	}
	if len(out.Item) == 0 {
		return counterItem{}, nil
	}
	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return counterItem{}, err
	}
	return it, nil
}

func unitCounterKey(customerID, unitNumber string) string {
	return "C#" + customerID + "#U#" + unitNumber
}

func customerTotalKey(customerID string) string {
	return "C#" + customerID + "#TOTAL"
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
