package valueobject

import "github.com/oksasatya/go-course-marketplace/internal/domain"

const (
	couponCodeMaxLength         = 50
	couponDiscountTypeMaxLength = 20

	// CouponMinimumPriceFloor mirrors check_minimum_price on the coupon table.
	CouponMinimumPriceFloor = 10.99
)

type (
	CouponID    string
	OrderID     string
	OrderItemID string
)

func NewCouponID(v string) (CouponID, error)       { return parseULID[CouponID]("coupon id", v) }
func NewOrderID(v string) (OrderID, error)         { return parseULID[OrderID]("order id", v) }
func NewOrderItemID(v string) (OrderItemID, error) { return parseULID[OrderItemID]("order item id", v) }

type CouponCode string

func NewCouponCode(v string) (CouponCode, error) {
	if err := maxLength("coupon code", v, couponCodeMaxLength); err != nil {
		return "", err
	}
	return CouponCode(v), nil
}

type CouponDiscountType string

func NewCouponDiscountType(v string) (CouponDiscountType, error) {
	if err := maxLength("coupon discount type", v, couponDiscountTypeMaxLength); err != nil {
		return "", err
	}
	return CouponDiscountType(v), nil
}

type CouponDiscountValue float64

func NewCouponDiscountValue(v float64) (CouponDiscountValue, error) {
	if err := finite("coupon discount value", v); err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, domain.Validationf("coupon discount value must be greater than 0, got: %f", v)
	}
	return CouponDiscountValue(v), nil
}

type CouponMinimumPrice float64

func NewCouponMinimumPrice(v float64) (CouponMinimumPrice, error) {
	if err := finite("coupon minimum price", v); err != nil {
		return 0, err
	}
	if v < CouponMinimumPriceFloor {
		return 0, domain.Validationf("coupon minimum price must be at least %.2f, got: %f", CouponMinimumPriceFloor, v)
	}
	return CouponMinimumPrice(v), nil
}

type CouponMaxUses int

func NewCouponMaxUses(v int) (CouponMaxUses, error) {
	if v <= 0 {
		return 0, domain.Validationf("coupon max uses must be greater than 0, got: %d", v)
	}
	return CouponMaxUses(v), nil
}

type CouponCurrentUses int

func NewCouponCurrentUses(v int) (CouponCurrentUses, error) {
	if err := nonNegativeInt("coupon current uses", v); err != nil {
		return 0, err
	}
	return CouponCurrentUses(v), nil
}

type OrderTotal float64

func NewOrderTotal(v float64) (OrderTotal, error) {
	if err := nonNegativeFloat("order total", v); err != nil {
		return 0, err
	}
	return OrderTotal(v), nil
}

type OrderItemPrice float64

func NewOrderItemPrice(v float64) (OrderItemPrice, error) {
	if err := nonNegativeFloat("order item price", v); err != nil {
		return 0, err
	}
	return OrderItemPrice(v), nil
}
