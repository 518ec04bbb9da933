package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/gauswarn/storefront/internal/platform/shopmozo"
	"github.com/gauswarn/storefront/pkg/config"
	"github.com/gauswarn/storefront/pkg/logctx"
	"github.com/gauswarn/storefront/pkg/tool"
	types "github.com/gauswarn/storefront/pkg/types"
)

const shippingOrderPrefix = "ORD"

// ShippingAdapter wraps the carrier client behind a never-fails surface:
// shipping is advisory and payment confirmation must not fail because of it.
type ShippingAdapter struct {
	client ShippingClient
	cfg    *config.Config
	log    *zap.SugaredLogger
}

func NewShippingAdapter(client ShippingClient, cfg *config.Config, log *zap.SugaredLogger) *ShippingAdapter {
	return &ShippingAdapter{client: client, cfg: cfg, log: log}
}

// CreateOrder pushes a fulfillment order from the frozen cart snapshot and
// always returns a usable identifier. An empty cart skips the external call
// entirely; any carrier rejection or transport failure degrades to a locally
// generated fallback id.
func (a *ShippingAdapter) CreateOrder(ctx context.Context, customer types.CustomerSnapshot, cart []types.CartItem, date string) string {
	log := logctx.FromCtx(ctx, a.log)

	localID := tool.LocalOrderID(shippingOrderPrefix)
	if len(cart) == 0 {
		log.Infow("cart is empty, skipping shipping order", "fallback_id", localID)
		return localID
	}

	items := make([]shopmozo.ProductDetail, 0, len(cart))
	for _, item := range cart {
		sku := item.SKU
		if sku == "" {
			sku = "SKU001"
		}
		category := item.Category
		if category == "" {
			category = "Ghee"
		}
		hsn := item.HSN
		if hsn == "" {
			hsn = "17021190"
		}
		items = append(items, shopmozo.ProductDetail{
			Name:            item.Name,
			SKUNumber:       sku,
			Quantity:        item.Quantity,
			Discount:        item.Discount,
			HSN:             hsn,
			UnitPrice:       item.UnitPrice,
			ProductCategory: category,
		})
	}

	req := &shopmozo.PushOrderRequest{
		OrderID:             localID,
		OrderDate:           date,
		OrderType:           "ESSENTIALS",
		ConsigneeName:       customer.Name,
		ConsigneePhone:      customer.Mobile,
		ConsigneeEmail:      customer.Email,
		ConsigneeAddressOne: customer.HouseNumber,
		ConsigneeAddressTwo: customer.Landmark,
		ConsigneePinCode:    customer.Pincode,
		ConsigneeCity:       customer.City,
		ConsigneeState:      customer.State,
		ProductDetail:       items,
		PaymentType:         "PREPAID",
		Weight:              200,
		Length:              10,
		Width:               20,
		Height:              15,
		WarehouseID:         a.cfg.Shopmozo.WarehouseID,
	}

	carrierID, err := a.client.PushOrder(ctx, req)
	if err != nil {
		log.Warnw("shipping order failed, using fallback id", "fallback_id", localID, "error", err.Error())
		return localID
	}
	log.Infow("shipping order created", "shopmozo_order_id", carrierID)
	return carrierID
}
