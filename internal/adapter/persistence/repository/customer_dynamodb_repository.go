package repository

import (
	"context"
	"fmt"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCustomersTableName = "customers"
	defaultUnitsTableName     = "units"
)

type customerItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`

	UsesCustomPricing       bool     `dynamodbav:"uses_custom_pricing"`
	CustomTiers             []string `dynamodbav:"custom_tiers,omitempty"`
	HasVolumeDiscount       bool     `dynamodbav:"has_volume_discount"`
	VolumeDiscountThreshold int      `dynamodbav:"volume_discount_threshold,omitempty"`
	VolumeDiscountPercent   string   `dynamodbav:"volume_discount_percent,omitempty"`

	ApprovalMode  string `dynamodbav:"approval_mode"`
	UnitThreshold int    `dynamodbav:"unit_threshold,omitempty"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - customers: PK id (string); pricing profile and approval preference are
//     flattened onto the customer item
//   - units: PK id (string) = "C#<customer>#U#<unit>"

type CustomerDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	unitsTable string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		unitsTable: getenvDefault("UNITS_TABLE", defaultUnitsTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) UnitExists(ctx context.Context, customerID, unitNumber string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.unitsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: unitCounterKey(customerID, unitNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	tiers := make([]decimal.Decimal, 0, len(it.CustomTiers))
	for _, raw := range it.CustomTiers {
		tier, err := decimal.NewFromString(raw)
		if err != nil {
			return entities.Customer{}, fmt.Errorf("customer %s: invalid custom tier %q: %w", it.ID, raw, err)
		}
		tiers = append(tiers, tier)
	}
	var discountPercent decimal.Decimal
	if it.VolumeDiscountPercent != "" {
		var err error
		discountPercent, err = decimal.NewFromString(it.VolumeDiscountPercent)
		if err != nil {
			return entities.Customer{}, fmt.Errorf("customer %s: invalid volume_discount_percent %q: %w", it.ID, it.VolumeDiscountPercent, err)
		}
	}

	return entities.Customer{
		ID:   it.ID,
		Name: it.Name,
		PricingProfile: entities.CustomerPricingProfile{
			CustomerID:              it.ID,
			UsesCustomPricing:       it.UsesCustomPricing,
			CustomTiers:             tiers,
			HasVolumeDiscount:       it.HasVolumeDiscount,
			VolumeDiscountThreshold: it.VolumeDiscountThreshold,
			VolumeDiscountPercent:   discountPercent,
		},
		ApprovalPreference: entities.CustomerApprovalPreference{
			CustomerID:    it.ID,
			Mode:          entities.ApprovalMode(it.ApprovalMode),
			UnitThreshold: it.UnitThreshold,
		},
	}, nil
}
