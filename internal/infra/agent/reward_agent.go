// Package agent drafts personalized rewards through the Gemini API.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"tapadmin/config"
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
)

const defaultModel = "gemini-2.0-flash"

const createRewardFn = "create_reward"

const systemPrompt = "You are a loyalty program designer for small retail merchants. " +
	"Given a merchant profile and one customer's visit history, design a single reward " +
	"that is likely to bring that customer back. Always respond by calling the " +
	"create_reward function. Keep reward names under 40 characters and point costs " +
	"proportional to the customer's spending level."

// rewardAgent implements service.RewardAgent on the Gemini API.
type rewardAgent struct {
	client *genai.Client
	model  string
}

// NewRewardAgent is the constructor for rewardAgent.
func NewRewardAgent(cfg *config.Config) (service.RewardAgent, error) {
	if cfg.Agent == nil || cfg.Agent.APIKey == "" {
		return nil, errors.New("agent api key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Agent.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	model := cfg.Agent.Model
	if model == "" {
		model = defaultModel
	}

	return &rewardAgent{client: client, model: model}, nil
}

// DraftReward prompts the model with the merchant and customer context and
// parses the forced create_reward function call.
func (a *rewardAgent) DraftReward(ctx context.Context, merchant *entity.Merchant, customer *entity.MerchantCustomer) (*service.RewardDraft, error) {
	prompt := buildPrompt(merchant, customer)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools:             []*genai.Tool{rewardTool()},
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode:                 genai.FunctionCallingConfigModeAny,
				AllowedFunctionNames: []string{createRewardFn},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate reward draft")
	}

	for _, call := range resp.FunctionCalls() {
		if call.Name != createRewardFn {
			continue
		}

		return parseDraft(call.Args)
	}

	return nil, errors.New("model did not call create_reward")
}

func rewardTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        createRewardFn,
			Description: "Create one loyalty reward for the customer described in the prompt.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"rewardName":  {Type: genai.TypeString, Description: "Short customer-facing reward name."},
					"description": {Type: genai.TypeString, Description: "One-sentence description shown in the app."},
					"type":        {Type: genai.TypeString, Enum: []string{"fixedDiscount", "percentageDiscount", "freeItem"}},
					"pointsCost":  {Type: genai.TypeInteger, Description: "Points required to redeem."},
					"reasoning":   {Type: genai.TypeString, Description: "Why this reward fits this customer."},
				},
				Required: []string{"rewardName", "description", "type", "pointsCost"},
			},
		}},
	}
}

func buildPrompt(merchant *entity.Merchant, customer *entity.MerchantCustomer) string {
	return fmt.Sprintf(
		"Merchant: %s (%s). Customer %s: lifetime spend $%.2f over %d transactions, "+
			"%d redemptions, current points balance %d, tier %q, last visit %d days ago.",
		merchant.DisplayName(), merchant.BusinessType,
		customer.FullName, customer.TotalLifetimeSpend, customer.LifetimeTransactionCount,
		customer.RedemptionCount, customer.PointsBalance, customer.MembershipTier,
		customer.DaysSinceLastVisit,
	)
}

func parseDraft(args map[string]any) (*service.RewardDraft, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, errors.Wrap(err, "encode function call args")
	}

	var draft service.RewardDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, errors.Wrap(err, "decode reward draft")
	}
	if draft.RewardName == "" {
		return nil, errors.New("reward draft missing rewardName")
	}

	return &draft, nil
}
