package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shopapi/internal/domain/cart"
	"shopapi/internal/domain/entity"
)

func TestFromCartView_FlattensProducts(t *testing.T) {
	v := &cart.View{
		Cart: &entity.Cart{ID: 10, UserID: 3},
		Lines: []*cart.Line{
			{
				Item:    &entity.CartItem{ID: 1, CartID: 10, ProductID: 100, Quantity: 2},
				Product: &entity.Product{ID: 100, Name: "Widget", Price: decimal.RequireFromString("9.99")},
			},
			{
				Item:    &entity.CartItem{ID: 2, CartID: 10, ProductID: 101, Quantity: 1},
				Product: &entity.Product{ID: 101, Name: "Gadget", Price: decimal.RequireFromString("25.00")},
			},
		},
	}

	resp := FromCartView(v)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, int64(3), resp.UserID)
	assert.Len(t, resp.Items, 2)

	assert.Equal(t, "Widget", resp.Items[0].ProductName)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.RequireFromString("19.98")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("44.98")))
}

func TestFromCartView_PreservesLines(t *testing.T) {
	v := &cart.View{
		Cart: &entity.Cart{ID: 7, UserID: 4},
		Lines: []*cart.Line{
			{
				Item:    &entity.CartItem{ID: 1, CartID: 7, ProductID: 100, Quantity: 2},
				Product: &entity.Product{ID: 100, Name: "Widget", Price: decimal.NewFromInt(5)},
			},
			{
				Item:    &entity.CartItem{ID: 2, CartID: 7, ProductID: 101, Quantity: 1},
				Product: &entity.Product{ID: 101, Name: "Gadget", Price: decimal.NewFromInt(9)},
			},
			{
				Item:    &entity.CartItem{ID: 3, CartID: 7, ProductID: 102, Quantity: 4},
				Product: &entity.Product{ID: 102, Name: "Gizmo", Price: decimal.NewFromInt(2)},
			},
		},
	}

	resp := FromCartView(v)

	assert.Len(t, resp.Items, len(v.Lines))
	for i, line := range v.Lines {
		assert.Equal(t, line.Item.ProductID, resp.Items[i].ProductID)
		assert.Equal(t, line.Item.Quantity, resp.Items[i].Quantity)
	}
}

func TestFromCartView_MissingProduct(t *testing.T) {
	v := &cart.View{
		Cart: &entity.Cart{ID: 10, UserID: 3},
		Lines: []*cart.Line{
			{Item: &entity.CartItem{ID: 1, CartID: 10, ProductID: 100, Quantity: 2}},
		},
	}

	resp := FromCartView(v)

	assert.Len(t, resp.Items, 1)
	assert.Empty(t, resp.Items[0].ProductName)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.Total.IsZero())
}

func TestUpdateProductRequest_ZeroPricePreserved(t *testing.T) {
	req := UpdateProductRequest{}
	in := req.ToInput()

	assert.Nil(t, in.Price)
	assert.Nil(t, in.Name)

	price := decimal.RequireFromString("5.50")
	req = UpdateProductRequest{Price: price}
	in = req.ToInput()

	assert.NotNil(t, in.Price)
	assert.True(t, in.Price.Equal(price))
}
