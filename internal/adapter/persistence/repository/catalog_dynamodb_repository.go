package repository

import (
	"context"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName      = "services"
	defaultPriceTablesTableName   = "price_tables"
	defaultServicePricesTableName = "service_prices"
)

type serviceItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Category  string  `dynamodbav:"category"`
	Unit      string  `dynamodbav:"unit"`
	BasePrice float64 `dynamodbav:"base_price"`
}

type priceTableItem struct {
	ID               string   `dynamodbav:"id"`
	Name             string   `dynamodbav:"name"`
	Modifier         *float64 `dynamodbav:"modifier,omitempty"`
	ConsumableCredit float64  `dynamodbav:"consumable_credit"`
}

type servicePriceItem struct {
	PriceTableID string  `dynamodbav:"price_table_id"`
	ServiceID    string  `dynamodbav:"service_id"`
	Price        float64 `dynamodbav:"price"`
}

// CatalogDynamoRepository loads the reference data (services, price tables,
// per-table prices) from DynamoDB. The catalog is read once at startup; the
// tables are small enough that a paginated scan is fine.
type CatalogDynamoRepository struct {
	ddb                *dynamodb.Client
	servicesTable      string
	priceTablesTable   string
	servicePricesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:                ddb,
		servicesTable:      getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		priceTablesTable:   getenvDefault("PRICE_TABLES_TABLE", defaultPriceTablesTableName),
		servicePricesTable: getenvDefault("SERVICE_PRICES_TABLE", defaultServicePricesTableName),
	}
}

func (r *CatalogDynamoRepository) LoadCatalog(ctx context.Context) (interfaces.CatalogData, error) {
	var data interfaces.CatalogData

	if err := r.scanAll(ctx, r.servicesTable, func(raw map[string]types.AttributeValue) error {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		data.Services = append(data.Services, entities.Service{
			ID:        it.ID,
			Name:      it.Name,
			Category:  entities.ServiceCategory(it.Category),
			Unit:      entities.ServiceUnit(it.Unit),
			BasePrice: it.BasePrice,
		})
		return nil
	}); err != nil {
		return interfaces.CatalogData{}, err
	}

	if err := r.scanAll(ctx, r.priceTablesTable, func(raw map[string]types.AttributeValue) error {
		var it priceTableItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		data.PriceTables = append(data.PriceTables, entities.PriceTable{
			ID:               it.ID,
			Name:             it.Name,
			Modifier:         it.Modifier,
			ConsumableCredit: it.ConsumableCredit,
		})
		return nil
	}); err != nil {
		return interfaces.CatalogData{}, err
	}

	if err := r.scanAll(ctx, r.servicePricesTable, func(raw map[string]types.AttributeValue) error {
		var it servicePriceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		data.ServicePrices = append(data.ServicePrices, entities.ServicePrice{
			PriceTableID: it.PriceTableID,
			ServiceID:    it.ServiceID,
			Price:        it.Price,
		})
		return nil
	}); err != nil {
		return interfaces.CatalogData{}, err
	}

	return data, nil
}

func (r *CatalogDynamoRepository) scanAll(ctx context.Context, table string, visit func(map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := visit(raw); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}
