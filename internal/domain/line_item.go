package domain

// Price описывает денежную сумму с валютой.
type Price struct {
	Type     string  `json:"type,omitempty"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Net      float64 `json:"net,omitempty"`
	Gross    float64 `json:"gross,omitempty"`
}

type BasketRebate struct {
	ID              string `json:"id"`
	Code            string `json:"code,omitempty"`
	RebateType      string `json:"rebateType,omitempty"`
	PromotionID     string `json:"promotionId,omitempty"`
	Description     string `json:"description,omitempty"`
	Amount          Price  `json:"amount"`
	PromotionType   string `json:"promotionType,omitempty"`
	ValueRebateType string `json:"valueRebateType,omitempty"`
}

type Quantity struct {
	Type  string  `json:"type,omitempty"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type ItemSurcharge struct {
	Amount      Price  `json:"amount"`
	Description string `json:"description,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Text        string `json:"text,omitempty"`
}

type LineItemTotals struct {
	SalesTaxTotal     *Price `json:"salesTaxTotal,omitempty"`
	ShippingTaxTotal  *Price `json:"shippingTaxTotal,omitempty"`
	ShippingTotal     Price  `json:"shippingTotal"`
	Total             Price  `json:"total"`
	UndiscountedTotal *Price `json:"undiscountedTotal,omitempty"`
	ValueRebatesTotal *Price `json:"valueRebatesTotal,omitempty"`

	// для котировок
	OriginTotal *Price `json:"originTotal,omitempty"`
}

// LineItem описывает позицию корзины, заказа или котировки.
type LineItem struct {
	ID              string          `json:"id"`
	Position        int             `json:"position"`
	Quantity        Quantity        `json:"quantity"`
	ProductSKU      string          `json:"productSKU"`
	Price           Price           `json:"price"`
	SingleBasePrice Price           `json:"singleBasePrice"`
	ItemSurcharges  []ItemSurcharge `json:"itemSurcharges,omitempty"`
	ValueRebates    []BasketRebate  `json:"valueRebates,omitempty"`
	Totals          LineItemTotals  `json:"totals"`
	IsHiddenGift    bool            `json:"isHiddenGift"`
	IsFreeGift      bool            `json:"isFreeGift"`

	// для позиций заказа
	Name              string `json:"name,omitempty"`
	Description       string `json:"description,omitempty"`
	FulfillmentStatus string `json:"fulfillmentStatus,omitempty"`

	// для котировок
	OriginSingleBasePrice *Price `json:"originSingleBasePrice,omitempty"`
}

type LineItemUpdate struct {
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
	SKU      string  `json:"sku,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}
