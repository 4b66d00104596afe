// internal/adapters/shopify/queries.go
package shopify

// carrierServicesQuery looks up carrier services by name for the
// adopt-on-conflict fallback.
const carrierServicesQuery = `
query CarrierServices($first: Int!, $query: String) {
  carrierServices(first: $first, query: $query) {
    edges {
      node {
        id
        name
        active
        callbackUrl
      }
    }
  }
}
`

// fulfillmentServiceListQuery lists the shop's fulfillment services for the
// adopt-on-conflict fallback, matched by serviceName.
const fulfillmentServiceListQuery = `
query FulfillmentServiceList {
  shop {
    fulfillmentServices {
      id
      callbackUrl
      handle
      inventoryManagement
      serviceName
    }
  }
}
`

// productsQuery fetches the catalog with nested variants for operator
// selection and selection re-validation.
const productsQuery = `
query Products($first: Int!) {
  products(first: $first) {
    nodes {
      id
      title
      variants(first: 50) {
        nodes {
          id
          title
          sku
        }
      }
    }
  }
}
`

// fulfillmentServiceLocationQuery resolves the location attached to the
// designated fulfillment service.
const fulfillmentServiceLocationQuery = `
query GetFulfillmentServiceLocation($id: ID!) {
  fulfillmentService(id: $id) {
    id
    serviceName
    location {
      id
    }
  }
}
`

// inventoryItemsQuery resolves inventory-item handles for a batch of
// variants in one round trip.
const inventoryItemsQuery = `
query GetInventoryItemsForVariants($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on ProductVariant {
      id
      inventoryItem {
        id
      }
    }
  }
}
`

// locationsQuery lists the merchant's locations.
const locationsQuery = `
query Locations {
  locations(first: 10) {
    nodes {
      id
      name
      fulfillsOnlineOrders
    }
  }
}
`

// orderFulfillmentOrdersQuery fetches an order's fulfillment-order handles.
const orderFulfillmentOrdersQuery = `
query GetOrderWithFulfillmentOrders($id: ID!) {
  order(id: $id) {
    fulfillmentOrders(first: 5) {
      edges {
        node {
          id
          status
          requestStatus
        }
      }
    }
  }
}
`
