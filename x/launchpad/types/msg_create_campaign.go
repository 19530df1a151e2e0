package types

import (
	"fmt"
	"regexp"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreateCampaign{}

const maxCampaignNameLength = 64

var validSymbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,11}$`)

// MsgCreateCampaign defines a message to create a new launchpad campaign.
// Creation mints the campaign's entire fixed supply into module custody.
type MsgCreateCampaign struct {
	Creator         string   `json:"creator"`
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	TargetFunding   math.Int `json:"target_funding"`
	SettlementDenom string   `json:"settlement_denom"`
	PlatformFeeAddr string   `json:"platform_fee_addr"`
	VenueKind       string   `json:"venue_kind"`
}

// NewMsgCreateCampaign creates a new MsgCreateCampaign instance
func NewMsgCreateCampaign(creator, name, symbol string, targetFunding math.Int, settlementDenom, platformFeeAddr, venueKind string) *MsgCreateCampaign {
	return &MsgCreateCampaign{
		Creator:         creator,
		Name:            name,
		Symbol:          symbol,
		TargetFunding:   targetFunding,
		SettlementDenom: settlementDenom,
		PlatformFeeAddr: platformFeeAddr,
		VenueKind:       venueKind,
	}
}

func (msg *MsgCreateCampaign) Reset()        { *msg = MsgCreateCampaign{} }
func (msg *MsgCreateCampaign) ProtoMessage() {}
func (msg *MsgCreateCampaign) String() string {
	return fmt.Sprintf("MsgCreateCampaign{creator=%s symbol=%s target=%s venue=%s}",
		msg.Creator, msg.Symbol, msg.TargetFunding, msg.VenueKind)
}

// Route implements the sdk.Msg interface
func (msg MsgCreateCampaign) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateCampaign) Type() string { return "create_campaign" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateCampaign) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreateCampaign) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.PlatformFeeAddr); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid platform fee address: %s", err)
	}
	if msg.Name == "" || len(msg.Name) > maxCampaignNameLength {
		return sdkerrors.Wrapf(ErrInvalidTokenSymbol, "campaign name must be 1-%d characters", maxCampaignNameLength)
	}
	if !validSymbolPattern.MatchString(msg.Symbol) {
		return sdkerrors.Wrapf(ErrInvalidTokenSymbol, "symbol %q must be 2-12 uppercase alphanumerics", msg.Symbol)
	}
	if err := sdk.ValidateDenom(msg.SettlementDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "settlement denom: %s", err)
	}
	if msg.TargetFunding.IsNil() || !msg.TargetFunding.IsPositive() {
		return ErrInvalidTargetFunding
	}
	if !ValidVenueKind(msg.VenueKind) {
		return sdkerrors.Wrapf(ErrInvalidVenueKind, "venue kind %q", msg.VenueKind)
	}
	return nil
}
