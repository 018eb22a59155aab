package grpc

// proto.go defines the gRPC server interface and wire messages derived from
// meridian/credit/v1/credit.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/meridianbank/credit-origination/api/gen/go/meridian/credit/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Wire messages. Monetary values and rates travel as decimal strings,
// timestamps as RFC 3339 strings.
// ---------------------------------------------------------------------------

// Application is the wire representation of a credit application.
type Application struct {
	Id             string `json:"id"`
	CustomerNumber string `json:"customer_number"`
	CreditType     string `json:"credit_type"`
	Amount         string `json:"amount"`
	TermMonths     int    `json:"term_months"`
	MonthlyIncome  string `json:"monthly_income"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	ApprovedAt     string `json:"approved_at,omitempty"`
	RejectedAt     string `json:"rejected_at,omitempty"`
}

// Stage is one entry of an application's timeline.
type Stage struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// FraudFinding is one rule verdict within a screening report.
type FraudFinding struct {
	RuleName string `json:"rule_name"`
	Level    string `json:"level"`
	Reason   string `json:"reason"`
}

type EvaluateApplicationRequest struct {
	CustomerNumber string `json:"customer_number"`
	CreditType     string `json:"credit_type"`
	Amount         string `json:"amount"`
	TermMonths     int    `json:"term_months"`
	MonthlyIncome  string `json:"monthly_income"`
	Notes          string `json:"notes,omitempty"`
}

type EvaluateApplicationResponse struct {
	Application *Application `json:"application"`
}

type CalculateCreditScoreRequest struct {
	ApplicationId string `json:"application_id"`
}

type CalculateCreditScoreResponse struct {
	CustomerNumber string `json:"customer_number"`
	Score          int    `json:"score"`
	Category       string `json:"category"`
}

type UpdateApplicationStatusRequest struct {
	ApplicationId string `json:"application_id"`
	NewStatus     string `json:"new_status"`
	Notes         string `json:"notes,omitempty"`
	Actor         string `json:"actor,omitempty"`
}

type UpdateApplicationStatusResponse struct {
	Application *Application `json:"application"`
}

type GetApplicationStageHistoryRequest struct {
	ApplicationId string `json:"application_id"`
}

type GetApplicationStageHistoryResponse struct {
	Stages []*Stage `json:"stages"`
}

type GetStaleApplicationsRequest struct {
	ThresholdDays int `json:"threshold_days"`
}

type GetStaleApplicationsResponse struct {
	Applications []*Application `json:"applications"`
}

type GetProcessingTimeRequest struct {
	ApplicationId string `json:"application_id"`
}

type GetProcessingTimeResponse struct {
	Days int `json:"days"`
}

type RefinanceCreditRequest struct {
	ApplicationId    string `json:"application_id"`
	CustomerNumber   string `json:"customer_number"`
	MarketRate       string `json:"market_rate"`
	ExtendTermMonths int    `json:"extend_term_months,omitempty"`
}

type RefinanceCreditResponse struct {
	Application   *Application `json:"application"`
	RefinanceRate string       `json:"refinance_rate"`
	Category      string       `json:"category"`
}

type FindRefinanceEligibleCreditsRequest struct {
	CustomerNumber string `json:"customer_number"`
}

type FindRefinanceEligibleCreditsResponse struct {
	Applications []*Application `json:"applications"`
}

type CalculateRefinanceOfferRequest struct {
	MarketRate string `json:"market_rate"`
	Category   string `json:"category"`
}

type CalculateRefinanceOfferResponse struct {
	MarketRate    string `json:"market_rate"`
	RefinanceRate string `json:"refinance_rate"`
	Category      string `json:"category"`
}

type AnalyzeBankCreditRiskRequest struct {
	WindowDays int `json:"window_days"`
}

type AnalyzeBankCreditRiskResponse struct {
	TotalActiveCredit    string            `json:"total_active_credit"`
	AverageAmount        string            `json:"average_amount"`
	DistributionByType   map[string]string `json:"distribution_by_type"`
	ApplicationsInWindow int               `json:"applications_in_window"`
	ApprovalsInWindow    int               `json:"approvals_in_window"`
	ApprovalRate         string            `json:"approval_rate"`
	RiskScore            float64           `json:"risk_score"`
	WindowDays           int               `json:"window_days"`
}

type AnalyzeApplicationRiskRequest struct {
	ApplicationId string `json:"application_id"`
}

type AnalyzeApplicationRiskResponse struct {
	ApplicationId       string  `json:"application_id"`
	RiskScore           float64 `json:"risk_score"`
	CreditTypeFactor    float64 `json:"credit_type_factor"`
	TermFactor          float64 `json:"term_factor"`
	IncomeToCreditRatio string  `json:"income_to_credit_ratio"`
}

type EvaluateTransactionRequest struct {
	CustomerNumber     string `json:"customer_number"`
	TransactionType    string `json:"transaction_type"`
	Amount             string `json:"amount"`
	IpAddress          string `json:"ip_address,omitempty"`
	UserAgent          string `json:"user_agent,omitempty"`
	DeviceId           string `json:"device_id,omitempty"`
	Location           string `json:"location,omitempty"`
	CounterpartAccount string `json:"counterpart_account,omitempty"`
}

type EvaluateTransactionResponse struct {
	OverallLevel string          `json:"overall_level"`
	Findings     []*FraudFinding `json:"findings"`
}

// ---------------------------------------------------------------------------
// Service interface and registration.
// ---------------------------------------------------------------------------

// CreditServiceServer is the server API for CreditService.
// It mirrors the proto-generated interface from meridian.credit.v1.CreditService.
type CreditServiceServer interface {
	EvaluateApplication(context.Context, *EvaluateApplicationRequest) (*EvaluateApplicationResponse, error)
	CalculateCreditScore(context.Context, *CalculateCreditScoreRequest) (*CalculateCreditScoreResponse, error)
	UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error)
	GetApplicationStageHistory(context.Context, *GetApplicationStageHistoryRequest) (*GetApplicationStageHistoryResponse, error)
	GetStaleApplications(context.Context, *GetStaleApplicationsRequest) (*GetStaleApplicationsResponse, error)
	GetProcessingTime(context.Context, *GetProcessingTimeRequest) (*GetProcessingTimeResponse, error)
	RefinanceCredit(context.Context, *RefinanceCreditRequest) (*RefinanceCreditResponse, error)
	FindRefinanceEligibleCredits(context.Context, *FindRefinanceEligibleCreditsRequest) (*FindRefinanceEligibleCreditsResponse, error)
	CalculateRefinanceOffer(context.Context, *CalculateRefinanceOfferRequest) (*CalculateRefinanceOfferResponse, error)
	AnalyzeBankCreditRisk(context.Context, *AnalyzeBankCreditRiskRequest) (*AnalyzeBankCreditRiskResponse, error)
	AnalyzeApplicationRisk(context.Context, *AnalyzeApplicationRiskRequest) (*AnalyzeApplicationRiskResponse, error)
	EvaluateTransaction(context.Context, *EvaluateTransactionRequest) (*EvaluateTransactionResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) EvaluateApplication(context.Context, *EvaluateApplicationRequest) (*EvaluateApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateApplication not implemented")
}
func (UnimplementedCreditServiceServer) CalculateCreditScore(context.Context, *CalculateCreditScoreRequest) (*CalculateCreditScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateCreditScore not implemented")
}
func (UnimplementedCreditServiceServer) UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateApplicationStatus not implemented")
}
func (UnimplementedCreditServiceServer) GetApplicationStageHistory(context.Context, *GetApplicationStageHistoryRequest) (*GetApplicationStageHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplicationStageHistory not implemented")
}
func (UnimplementedCreditServiceServer) GetStaleApplications(context.Context, *GetStaleApplicationsRequest) (*GetStaleApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStaleApplications not implemented")
}
func (UnimplementedCreditServiceServer) GetProcessingTime(context.Context, *GetProcessingTimeRequest) (*GetProcessingTimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProcessingTime not implemented")
}
func (UnimplementedCreditServiceServer) RefinanceCredit(context.Context, *RefinanceCreditRequest) (*RefinanceCreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefinanceCredit not implemented")
}
func (UnimplementedCreditServiceServer) FindRefinanceEligibleCredits(context.Context, *FindRefinanceEligibleCreditsRequest) (*FindRefinanceEligibleCreditsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindRefinanceEligibleCredits not implemented")
}
func (UnimplementedCreditServiceServer) CalculateRefinanceOffer(context.Context, *CalculateRefinanceOfferRequest) (*CalculateRefinanceOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateRefinanceOffer not implemented")
}
func (UnimplementedCreditServiceServer) AnalyzeBankCreditRisk(context.Context, *AnalyzeBankCreditRiskRequest) (*AnalyzeBankCreditRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeBankCreditRisk not implemented")
}
func (UnimplementedCreditServiceServer) AnalyzeApplicationRisk(context.Context, *AnalyzeApplicationRiskRequest) (*AnalyzeApplicationRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeApplicationRisk not implemented")
}
func (UnimplementedCreditServiceServer) EvaluateTransaction(context.Context, *EvaluateTransactionRequest) (*EvaluateTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateTransaction not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "meridian.credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "EvaluateApplication", Handler: _CreditService_EvaluateApplication_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "CalculateCreditScore", Handler: _CreditService_CalculateCreditScore_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "UpdateApplicationStatus", Handler: _CreditService_UpdateApplicationStatus_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetApplicationStageHistory", Handler: _CreditService_GetApplicationStageHistory_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetStaleApplications", Handler: _CreditService_GetStaleApplications_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetProcessingTime", Handler: _CreditService_GetProcessingTime_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "RefinanceCredit", Handler: _CreditService_RefinanceCredit_Handler},                           //nolint:revive // gRPC handler registration
		{MethodName: "FindRefinanceEligibleCredits", Handler: _CreditService_FindRefinanceEligibleCredits_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CalculateRefinanceOffer", Handler: _CreditService_CalculateRefinanceOffer_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeBankCreditRisk", Handler: _CreditService_AnalyzeBankCreditRisk_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeApplicationRisk", Handler: _CreditService_AnalyzeApplicationRisk_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "EvaluateTransaction", Handler: _CreditService_EvaluateTransaction_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_EvaluateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).EvaluateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/EvaluateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).EvaluateApplication(ctx, req.(*EvaluateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_CalculateCreditScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateCreditScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).CalculateCreditScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/CalculateCreditScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).CalculateCreditScore(ctx, req.(*CalculateCreditScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_UpdateApplicationStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateApplicationStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).UpdateApplicationStatus(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/UpdateApplicationStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).UpdateApplicationStatus(ctx, req.(*UpdateApplicationStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetApplicationStageHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationStageHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetApplicationStageHistory(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/GetApplicationStageHistory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetApplicationStageHistory(ctx, req.(*GetApplicationStageHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetStaleApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStaleApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetStaleApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/GetStaleApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetStaleApplications(ctx, req.(*GetStaleApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetProcessingTime_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProcessingTimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetProcessingTime(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/GetProcessingTime",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetProcessingTime(ctx, req.(*GetProcessingTimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RefinanceCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefinanceCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RefinanceCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/RefinanceCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RefinanceCredit(ctx, req.(*RefinanceCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_FindRefinanceEligibleCredits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindRefinanceEligibleCreditsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).FindRefinanceEligibleCredits(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/FindRefinanceEligibleCredits",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).FindRefinanceEligibleCredits(ctx, req.(*FindRefinanceEligibleCreditsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_CalculateRefinanceOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRefinanceOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).CalculateRefinanceOffer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/CalculateRefinanceOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).CalculateRefinanceOffer(ctx, req.(*CalculateRefinanceOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_AnalyzeBankCreditRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeBankCreditRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).AnalyzeBankCreditRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/AnalyzeBankCreditRisk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).AnalyzeBankCreditRisk(ctx, req.(*AnalyzeBankCreditRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_AnalyzeApplicationRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeApplicationRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).AnalyzeApplicationRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/AnalyzeApplicationRisk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).AnalyzeApplicationRisk(ctx, req.(*AnalyzeApplicationRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_EvaluateTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).EvaluateTransaction(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.credit.v1.CreditService/EvaluateTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).EvaluateTransaction(ctx, req.(*EvaluateTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}
