package i18n

// Bundle holds every display string the storefront renders. Snapshots may
// carry a custom bundle that replaces the default for their language.
type Bundle struct {
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	CartButton        string `json:"cartButton"`
	SearchPlaceholder string `json:"searchPlaceholder"`
	CategoryAll       string `json:"categoryAll"`
	CategoryRoses     string `json:"categoryRoses"`
	CategoryTulips    string `json:"categoryTulips"`
	CategoryLilies    string `json:"categoryLilies"`
	CategoryMixed     string `json:"categoryMixed"`
	DeliveryText1     string `json:"deliveryText1"`
	DeliveryText2     string `json:"deliveryText2"`
	DeleteButton      string `json:"deleteButton"`
	EditButton        string `json:"editButton"`
	SaveButton        string `json:"saveButton"`
	CancelButton      string `json:"cancelButton"`
	ConfirmDelete     string `json:"confirmDelete"`
	ProductAdded      string `json:"productAdded"`
	ProductRemoved    string `json:"productRemoved"`
	OrderConfirmation string `json:"orderConfirmation"`
	EmptyCart         string `json:"emptyCart"`
	NoProducts        string `json:"noProducts"`
	PromoTitle        string `json:"promoTitle"`
	PromoText         string `json:"promoText"`
	DaysLeft          string `json:"daysLeft"`
	HoursLeft         string `json:"hoursLeft"`
	MinutesLeft       string `json:"minutesLeft"`
	SecondsLeft       string `json:"secondsLeft"`
}

const DefaultLanguage = "es"

var defaults = map[string]Bundle{
	"es": {
		Title:             "Flora Majestyc - Flores Premium",
		Subtitle:          "Catálogo de productos mayoristas",
		CartButton:        "Pedir por WhatsApp",
		SearchPlaceholder: "Buscar productos...",
		CategoryAll:       "Todos",
		CategoryRoses:     "Rosas",
		CategoryTulips:    "Tulipanes",
		CategoryLilies:    "Lirios",
		CategoryMixed:     "Mixto",
		DeliveryText1:     "Entrega: Jueves 15 de Junio",
		DeliveryText2:     "Pedido mínimo: $1000",
		DeleteButton:      "Eliminar",
		EditButton:        "Editar",
		SaveButton:        "Guardar",
		CancelButton:      "Cancelar",
		ConfirmDelete:     "¿Estás seguro de que quieres eliminar este producto?",
		ProductAdded:      "Producto añadido al carrito",
		ProductRemoved:    "Producto eliminado del carrito",
		OrderConfirmation: "Tu pedido ha sido enviado por WhatsApp",
		EmptyCart:         "Tu carrito está vacío",
		NoProducts:        "No hay productos disponibles",
		PromoTitle:        "Oferta Especial",
		PromoText:         "20% de descuento en rosas rojas",
		DaysLeft:          "Días",
		HoursLeft:         "Horas",
		MinutesLeft:       "Minutos",
		SecondsLeft:       "Segundos",
	},
	"en": {
		Title:             "Flora Majestyc - Premium Flowers",
		Subtitle:          "Wholesale product catalog",
		CartButton:        "Order via WhatsApp",
		SearchPlaceholder: "Search products...",
		CategoryAll:       "All",
		CategoryRoses:     "Roses",
		CategoryTulips:    "Tulips",
		CategoryLilies:    "Lilies",
		CategoryMixed:     "Mixed",
		DeliveryText1:     "Delivery: Thursday June 15",
		DeliveryText2:     "Minimum order: $1000",
		DeleteButton:      "Delete",
		EditButton:        "Edit",
		SaveButton:        "Save",
		CancelButton:      "Cancel",
		ConfirmDelete:     "Are you sure you want to delete this product?",
		ProductAdded:      "Product added to cart",
		ProductRemoved:    "Product removed from cart",
		OrderConfirmation: "Your order has been sent via WhatsApp",
		EmptyCart:         "Your cart is empty",
		NoProducts:        "No products available",
		PromoTitle:        "Special Offer",
		PromoText:         "20% off on red roses",
		DaysLeft:          "Days",
		HoursLeft:         "Hours",
		MinutesLeft:       "Minutes",
		SecondsLeft:       "Seconds",
	},
}

// Resolve returns the bundle for a language tag. A non-nil override replaces
// the default wholesale; unknown tags fall back to Spanish.
func Resolve(lang string, override *Bundle) Bundle {
	if override != nil {
		return *override
	}
	if b, ok := defaults[lang]; ok {
		return b
	}
	return defaults[DefaultLanguage]
}
