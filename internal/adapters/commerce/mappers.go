package commerce

import (
	"strconv"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

func mapMoney(m wireMoney) domain.Money {
	amount, _ := strconv.ParseFloat(m.Amount, 64)
	return domain.Money{Amount: amount, CurrencyCode: m.CurrencyCode}
}

func mapMoneyPtr(m *wireMoney) *domain.Money {
	if m == nil {
		return nil
	}
	out := mapMoney(*m)
	return &out
}

func mapImage(img wireImage) domain.Image {
	return domain.Image{URL: img.URL, AltText: img.AltText, Width: img.Width, Height: img.Height}
}

func mapImagePtr(img *wireImage) *domain.Image {
	if img == nil {
		return nil
	}
	out := mapImage(*img)
	return &out
}

func mapTime(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339, raw)
	return t
}

func mapProduct(p wireProduct) domain.Product {
	product := domain.Product{
		ID:               p.ID,
		Title:            p.Title,
		Handle:           p.Handle,
		Description:      p.Description,
		ProductType:      p.ProductType,
		Vendor:           p.Vendor,
		Tags:             p.Tags,
		CreatedAt:        mapTime(p.CreatedAt),
		AvailableForSale: p.AvailableForSale,
		TotalInventory:   p.TotalInventory,
	}
	for _, edge := range p.Images.Edges {
		product.Images = append(product.Images, mapImage(edge.Node))
	}
	for _, edge := range p.Variants.Edges {
		v := edge.Node
		variant := domain.Variant{
			ID:                v.ID,
			Title:             v.Title,
			SKU:               v.SKU,
			AvailableForSale:  v.AvailableForSale,
			QuantityAvailable: v.QuantityAvailable,
			Price:             mapMoney(v.Price),
			CompareAtPrice:    mapMoneyPtr(v.CompareAtPrice),
			Image:             mapImagePtr(v.Image),
		}
		for _, opt := range v.SelectedOptions {
			variant.SelectedOptions = append(variant.SelectedOptions, domain.SelectedOption{Name: opt.Name, Value: opt.Value})
		}
		product.Variants = append(product.Variants, variant)
	}
	// Unset metafields come back as explicit nulls.
	for _, mf := range p.Metafields {
		if mf == nil {
			continue
		}
		product.Metafields = append(product.Metafields, domain.Metafield{
			Namespace: mf.Namespace,
			Key:       mf.Key,
			Value:     mf.Value,
			Type:      mf.Type,
		})
	}
	return product
}

func mapCollection(c wireCollection) domain.Collection {
	return domain.Collection{ID: c.ID, Title: c.Title, Handle: c.Handle, Description: c.Description}
}

func mapCart(c wireCart) domain.Cart {
	cart := domain.Cart{
		ID:        c.ID,
		CreatedAt: mapTime(c.CreatedAt),
		UpdatedAt: mapTime(c.UpdatedAt),
		Cost: domain.CartCost{
			Total:    mapMoney(c.Cost.TotalAmount),
			Subtotal: mapMoney(c.Cost.SubtotalAmount),
			TotalTax: mapMoneyPtr(c.Cost.TotalTaxAmount),
		},
	}
	for _, edge := range c.Lines.Edges {
		line := edge.Node
		cart.Lines = append(cart.Lines, domain.CartLine{
			ID:            line.ID,
			Quantity:      line.Quantity,
			VariantID:     line.Merchandise.ID,
			VariantTitle:  line.Merchandise.Title,
			Price:         mapMoney(line.Merchandise.Price),
			ProductID:     line.Merchandise.Product.ID,
			ProductTitle:  line.Merchandise.Product.Title,
			ProductHandle: line.Merchandise.Product.Handle,
			Image:         mapImagePtr(line.Merchandise.Product.FeaturedImage),
		})
	}
	return cart
}

func mapAddress(a wireAddress) domain.Address {
	return domain.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Country:   a.Country,
		Zip:       a.Zip,
		Phone:     a.Phone,
	}
}

func mapAddressPtr(a *wireAddress) *domain.Address {
	if a == nil {
		return nil
	}
	out := mapAddress(*a)
	return &out
}

func mapOrderSummary(o wireOrderSummary) domain.OrderSummary {
	return domain.OrderSummary{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		TotalPrice:        mapMoney(o.TotalPrice),
		ProcessedAt:       mapTime(o.ProcessedAt),
		FulfillmentStatus: o.FulfillmentStatus,
		FinancialStatus:   o.FinancialStatus,
	}
}

func mapCustomer(c wireCustomer) domain.Customer {
	customer := domain.Customer{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		DisplayName:      c.DisplayName,
		Email:            c.Email,
		Phone:            c.Phone,
		AcceptsMarketing: c.AcceptsMarketing,
	}
	for _, edge := range c.Addresses.Edges {
		customer.Addresses = append(customer.Addresses, mapAddress(edge.Node))
	}
	for _, edge := range c.Orders.Edges {
		customer.Orders = append(customer.Orders, mapOrderSummary(edge.Node))
	}
	return customer
}

func mapOrder(o wireOrder) domain.Order {
	order := domain.Order{
		OrderSummary:    mapOrderSummary(o.wireOrderSummary),
		Name:            o.Name,
		Email:           o.Email,
		CancelReason:    o.CancelReason,
		SubtotalPrice:   mapMoney(o.SubtotalPrice),
		TotalTax:        mapMoney(o.TotalTax),
		TotalShipping:   mapMoney(o.TotalShippingPrice),
		ShippingAddress: mapAddressPtr(o.ShippingAddress),
		BillingAddress:  mapAddressPtr(o.BillingAddress),
	}
	for _, edge := range o.LineItems.Edges {
		item := edge.Node
		order.LineItems = append(order.LineItems, domain.OrderLineItem{
			Title:         item.Title,
			Quantity:      item.Quantity,
			VariantTitle:  item.Variant.Title,
			Price:         mapMoney(item.Variant.Price),
			ProductHandle: item.Variant.Product.Handle,
			Image:         mapImagePtr(item.Variant.Product.FeaturedImage),
		})
	}
	for _, f := range o.Fulfillments {
		fulfillment := domain.Fulfillment{
			TrackingCompany: f.TrackingCompany,
			TrackingURLs:    f.TrackingURLs,
			Status:          f.Status,
		}
		for _, info := range f.TrackingInfo {
			fulfillment.TrackingNumbers = append(fulfillment.TrackingNumbers, info.Number)
		}
		order.Fulfillments = append(order.Fulfillments, fulfillment)
	}
	return order
}
