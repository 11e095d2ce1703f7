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
	defaultTechniciansTableName = "technicians"
	defaultTeamsTableName       = "team_memberships"
)

type technicianItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email,omitempty"`

	IsManager          bool   `dynamodbav:"is_manager"`
	CanOverridePricing bool   `dynamodbav:"can_override_pricing,omitempty"`
	ApprovalLimit      string `dynamodbav:"approval_limit,omitempty"`
}

type membershipItem struct {
	ManagerID string `dynamodbav:"manager_id"`
	MemberID  string `dynamodbav:"member_id"`
}

// TechnicianDynamoRepository persists technician profiles and the directed
// manager -> member relation.
//
// Table requirements:
//   - technicians: PK id (string)
//   - team_memberships: PK manager_id (string), SK member_id (string)

type TechnicianDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	teamsTable string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
		teamsTable: getenvDefault("TEAMS_TABLE", defaultTeamsTableName),
	}
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (entities.TechnicianProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TechnicianProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.TechnicianProfile{}, nil
	}

	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TechnicianProfile{}, err
	}

	profile := entities.TechnicianProfile{
		Identity: entities.Identity{ID: it.ID, Name: it.Name, Email: it.Email},
	}
	if it.IsManager {
		var limit decimal.Decimal
		if it.ApprovalLimit != "" {
			limit, err = decimal.NewFromString(it.ApprovalLimit)
			if err != nil {
				return entities.TechnicianProfile{}, fmt.Errorf("technician %s: invalid approval_limit %q: %w", it.ID, it.ApprovalLimit, err)
			}
		}
		profile.Manager = &entities.ManagerAuthorization{
			CanOverridePricing: it.CanOverridePricing,
			ApprovalLimit:      limit,
		}
	}
	return profile, nil
}

func (r *TechnicianDynamoRepository) ListTeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.teamsTable),
		KeyConditionExpression: aws.String("#m = :m"),
		ExpressionAttributeNames: map[string]string{
			"#m": "manager_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m": &types.AttributeValueMemberS{Value: managerID},
		},
	}

	var memberIDs []string
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it membershipItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			memberIDs = append(memberIDs, it.MemberID)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return memberIDs, nil
}
