package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgBuy{}

// MsgBuy defines a message to purchase campaign tokens on the bonding curve.
type MsgBuy struct {
	Buyer      string   `json:"buyer"`
	CampaignId uint64   `json:"campaign_id"`
	AmountIn   math.Int `json:"amount_in"`
}

// NewMsgBuy creates a new MsgBuy instance
func NewMsgBuy(buyer string, campaignID uint64, amountIn math.Int) *MsgBuy {
	return &MsgBuy{
		Buyer:      buyer,
		CampaignId: campaignID,
		AmountIn:   amountIn,
	}
}

func (msg *MsgBuy) Reset()        { *msg = MsgBuy{} }
func (msg *MsgBuy) ProtoMessage() {}
func (msg *MsgBuy) String() string {
	return fmt.Sprintf("MsgBuy{buyer=%s campaign=%d amount=%s}", msg.Buyer, msg.CampaignId, msg.AmountIn)
}

// Route implements the sdk.Msg interface
func (msg MsgBuy) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBuy) Type() string { return "buy" }

// GetSigners implements the sdk.Msg interface
func (msg MsgBuy) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBuy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if msg.CampaignId == 0 {
		return sdkerrors.Wrap(ErrCampaignNotFound, "campaign id cannot be zero")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "purchase amount must be positive")
	}
	return nil
}
