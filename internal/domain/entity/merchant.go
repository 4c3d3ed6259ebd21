// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// MerchantStatus is the lifecycle state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "active"
	MerchantStatusInactive  MerchantStatus = "inactive"
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusSuspended MerchantStatus = "suspended"
)

// Merchant is a merchant document in the `merchants` collection. The document
// id doubles as the merchant id. Program embeds are denormalized onto the
// document so the customer-facing read paths stay single-fetch.
type Merchant struct {
	ID                string              `firestore:"-" json:"id"`
	MerchantName      string              `firestore:"merchantName" json:"merchantName"`
	TradingName       string              `firestore:"tradingName" json:"tradingName"`
	LegalName         string              `firestore:"legalName" json:"legalName"`
	ABN               string              `firestore:"abn" json:"abn"`
	ABNVerification   *ABNVerification    `firestore:"abnVerification" json:"abnVerification,omitempty"`
	BusinessType      string              `firestore:"businessType" json:"businessType"`
	PrimaryEmail      string              `firestore:"primaryEmail" json:"primaryEmail"`
	BusinessEmail     string              `firestore:"businessEmail" json:"businessEmail"`
	BusinessPhone     string              `firestore:"businessPhone" json:"businessPhone"`
	Address           Address             `firestore:"address" json:"address"`
	DisplayAddress    string              `firestore:"displayAddress" json:"displayAddress"`
	Location          *Location           `firestore:"location" json:"location,omitempty"`
	Representative    Representative      `firestore:"representative" json:"representative"`
	OperatingHours    map[string]DayHours `firestore:"operatingHours" json:"operatingHours,omitempty"`
	Notifications     NotificationPrefs   `firestore:"notifications" json:"notifications"`
	PaymentProvider   string              `firestore:"paymentProvider" json:"paymentProvider"`
	PointOfSale       string              `firestore:"pointOfSale" json:"pointOfSale"`
	LogoURL           string              `firestore:"logoUrl" json:"logoUrl"`
	Status            MerchantStatus      `firestore:"status" json:"status"`
	DefaultMultiplier float64             `firestore:"defaultMultiplier" json:"defaultMultiplier"`
	TimeZone          string              `firestore:"timeZone" json:"timeZone"`

	// Program embeds. CoffeeProgram is guarded by the coffeeprogram flag so
	// the builder can reject a second program without scanning the array.
	HasCoffeeProgram   bool                 `firestore:"coffeeprogram" json:"coffeeprogram"`
	CoffeePrograms     []CoffeeProgram      `firestore:"coffeePrograms" json:"coffeePrograms,omitempty"`
	VoucherPrograms    []VoucherProgram     `firestore:"voucherPrograms" json:"voucherPrograms,omitempty"`
	TransactionRewards []TransactionProgram `firestore:"transactionRewards" json:"transactionRewards,omitempty"`
	CashbackProgram    *CashbackProgram     `firestore:"cashbackProgram" json:"cashbackProgram,omitempty"`

	HasIntroductoryReward   bool     `firestore:"hasIntroductoryReward" json:"hasIntroductoryReward"`
	IntroductoryRewardIDs   []string `firestore:"introductoryRewardIds" json:"introductoryRewardIds,omitempty"`
	IntroductoryRewardCount int      `firestore:"introductoryRewardCount" json:"introductoryRewardCount"`

	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	LastUpdated time.Time `firestore:"lastUpdated" json:"lastUpdated"`
}

// DisplayName prefers the explicit merchant name and falls back to the
// trading name, mirroring how merged reward rows are stamped.
func (m *Merchant) DisplayName() string {
	if m.MerchantName != "" {
		return m.MerchantName
	}

	return m.TradingName
}

// ABNVerification records the outcome of ABN checking for a merchant.
type ABNVerification struct {
	Status      string     `firestore:"status" json:"status"` // verified|rejected|pending
	Reason      string     `firestore:"reason" json:"reason"`
	DocumentURL string     `firestore:"documentUrl" json:"documentUrl"`
	VerifiedAt  *time.Time `firestore:"verifiedAt" json:"verifiedAt,omitempty"`
}

// Address is the structured postal address of a merchant.
type Address struct {
	Street   string `firestore:"street" json:"street"`
	Suburb   string `firestore:"suburb" json:"suburb"`
	State    string `firestore:"state" json:"state"`
	Postcode string `firestore:"postcode" json:"postcode"`
	Country  string `firestore:"country" json:"country"`
}

// Location carries the geocoded position and display variants.
type Location struct {
	Address        string      `firestore:"address" json:"address"`
	DisplayAddress string      `firestore:"displayAddress" json:"displayAddress"`
	Coordinates    Coordinates `firestore:"coordinates" json:"coordinates"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
}

// Point returns the coordinates as an orb point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Representative is the merchant's nominated contact person.
type Representative struct {
	Name  string `firestore:"name" json:"name"`
	Email string `firestore:"email" json:"email"`
	Phone string `firestore:"phone" json:"phone"`
}

// DayHours describes opening hours for a single weekday.
type DayHours struct {
	Open     string `firestore:"open" json:"open"`
	Close    string `firestore:"close" json:"close"`
	IsClosed bool   `firestore:"isClosed" json:"isClosed"`
}

// NotificationPrefs holds the merchant's notification toggles.
type NotificationPrefs struct {
	CustomerAnniversary   bool `firestore:"customerAnniversary" json:"customerAnniversary"`
	CustomerBirthday      bool `firestore:"customerBirthday" json:"customerBirthday"`
	CustomerFirstPurchase bool `firestore:"customerFirstPurchase" json:"customerFirstPurchase"`
	CustomerMilestone     bool `firestore:"customerMilestone" json:"customerMilestone"`
	DailySummary          bool `firestore:"dailySummary" json:"dailySummary"`
	LowInventory          bool `firestore:"lowInventory" json:"lowInventory"`
	MonthlySummary        bool `firestore:"monthlySummary" json:"monthlySummary"`
	PaymentIssues         bool `firestore:"paymentIssues" json:"paymentIssues"`
	PointsAwarded         bool `firestore:"pointsAwarded" json:"pointsAwarded"`
	RewardCreated         bool `firestore:"rewardCreated" json:"rewardCreated"`
	RewardExpiring        bool `firestore:"rewardExpiring" json:"rewardExpiring"`
	RewardRedeemed        bool `firestore:"rewardRedeemed" json:"rewardRedeemed"`
	SalesTarget           bool `firestore:"salesTarget" json:"salesTarget"`
	SecurityAlerts        bool `firestore:"securityAlerts" json:"securityAlerts"`
	SystemUpdates         bool `firestore:"systemUpdates" json:"systemUpdates"`
	WeeklySummary         bool `firestore:"weeklySummary" json:"weeklySummary"`
}
