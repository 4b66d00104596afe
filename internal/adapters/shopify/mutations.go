// internal/adapters/shopify/mutations.go
package shopify

// carrierServiceCreateMutation registers the checkout-time rate callback.
const carrierServiceCreateMutation = `
mutation CarrierServiceCreate($input: DeliveryCarrierServiceCreateInput!) {
  carrierServiceCreate(input: $input) {
    carrierService {
      id
      name
      active
      callbackUrl
    }
    userErrors {
      field
      message
    }
  }
}
`

// fulfillmentServiceCreateMutation registers the fulfillment service and
// its virtual location.
const fulfillmentServiceCreateMutation = `
mutation FulfillmentServiceCreate(
  $name: String!
  $callbackUrl: URL!
  $trackingSupport: Boolean
  $inventoryManagement: Boolean
  $requiresShippingMethod: Boolean
) {
  fulfillmentServiceCreate(
    name: $name
    callbackUrl: $callbackUrl
    trackingSupport: $trackingSupport
    inventoryManagement: $inventoryManagement
    requiresShippingMethod: $requiresShippingMethod
  ) {
    fulfillmentService {
      id
      serviceName
      callbackUrl
      inventoryManagement
      trackingSupport
      requiresShippingMethod
    }
    userErrors {
      field
      message
    }
  }
}
`

// webhookCreateMutation subscribes to order creation events.
const webhookCreateMutation = `
mutation WebhookSubscriptionCreate($callbackUrl: URL!) {
  webhookSubscriptionCreate(
    topic: ORDERS_CREATE
    webhookSubscription: { callbackUrl: $callbackUrl, format: JSON }
  ) {
    webhookSubscription {
      id
    }
    userErrors {
      field
      message
    }
  }
}
`

// inventorySetQuantitiesMutation writes an absolute available quantity for
// an item at one location. ignoreCompareQuantity makes it a correction, not
// a compare-and-set.
const inventorySetQuantitiesMutation = `
mutation SetInventoryQuantity(
  $inventoryItemId: ID!
  $locationId: ID!
  $quantity: Int!
) {
  inventorySetQuantities(
    input: {
      name: "available"
      reason: "correction"
      ignoreCompareQuantity: true
      quantities: [{
        inventoryItemId: $inventoryItemId
        locationId: $locationId
        quantity: $quantity
      }]
    }
  ) {
    userErrors { field message }
  }
}
`

// inventoryActivateMutation stocks an inventory item at a location.
const inventoryActivateMutation = `
mutation ActivateInventoryItemAtLocation(
  $inventoryItemId: ID!
  $locationId: ID!
) {
  inventoryActivate(
    inventoryItemId: $inventoryItemId
    locationId: $locationId
  ) {
    inventoryLevel {
      id
    }
    userErrors {
      field
      message
    }
  }
}
`

// fulfillmentCreateMutation confirms the fulfillment on the platform with
// tracking info, customer notification suppressed.
const fulfillmentCreateMutation = `
mutation FulfillOrder(
  $fulfillmentOrderId: ID!
  $trackingCompany: String!
  $trackingNumber: String!
  $trackingUrl: URL
) {
  fulfillmentCreate(
    fulfillment: {
      notifyCustomer: false
      trackingInfo: {
        company: $trackingCompany
        number: $trackingNumber
        url: $trackingUrl
      }
      lineItemsByFulfillmentOrder: [
        {
          fulfillmentOrderId: $fulfillmentOrderId
        }
      ]
    }
    message: "Fulfilled by fulfillment orchestrator"
  ) {
    fulfillment {
      id
      status
    }
    userErrors {
      field
      message
    }
  }
}
`
