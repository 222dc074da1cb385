// Package deliverytype contains the DeliveryType aggregate: a named delivery
// service tier (for example "2-Hour Express" or "Same Day") with its base
// price and pricing policy. Delivery types own the pricing rules evaluated by
// the quote resolver and carry the per-type oversize policy that decides
// whether oversize parcels are priced by a dedicated rule or by an additive
// surcharge on top of the normal weight rule.
package deliverytype
