package responder

// Pool names
const (
	PoolValueDistribution   = "valueDistribution"
	PoolProfit              = "profit"
	PoolPlatforms           = "platforms"
	PoolIntermediaries      = "intermediaries"
	PoolAsymmetry           = "asymmetry"
	PoolTrust               = "trust"
	PoolMarkets             = "markets"
	PoolRegulation          = "regulation"
	PoolTemporal            = "temporal"
	PoolPublicMechanics     = "publicMechanics"
	PoolAutomationAuthority = "automationAuthority"
	PoolAccountability      = "accountability"
	PoolErrors              = "errors"
	PoolHumanInLoop         = "humanInLoop"
	PoolDecisionEngineering = "decisionEngineering"
	PoolAuthorityChains     = "authorityChains"
	PoolEscalation          = "escalation"
	PoolReceipts            = "receipts"
	PoolConstraints         = "constraints"
	PoolBoundedAutonomy     = "boundedAutonomy"
	PoolCompliance          = "complianceVsRouting"
	PoolFallback            = "fallback"
)

func defaultPools() map[string][]string {
	return map[string][]string{
		PoolValueDistribution: {
			"This is a value distribution question. Va = Vp + Ve + Vr. Who captured? What got externalized? What obligation remains?",
			"The question isn't whether value was created. The question is where it landed and who holds what when the transaction closes.",
			"Follow the timing: Private capture happens fast. Externalities disperse slowly. Residual obligation surfaces late. Who's still around when the bill comes due?",
			"Whoever draws the transaction boundary controls what they acknowledge. The arbitrage is in boundary-drawing.",
		},
		PoolProfit: {
			"Profit isn't inherently exploitative. The test: Does it require counterparty ignorance? If they knew what you knew, would they still trade? If yes, that's exchange. If no, that's extraction.",
			"Different value functions produce different trades. Both parties can get what they need on different time horizons. That's not exploitation.",
			"Vp isn't just what you received. It's what you directed. Did you have power to allocate where value landed? Or did someone else direct it without your knowledge?",
		},
		PoolPlatforms: {
			"Platform formula: Va = Vp. They zero out Ve and Vr by defining them outside the transaction boundary. More honestly: their Vp = Va minus everything they externalized.",
			"The platform pays for the delivery. But the driver's vehicle keeps depreciating, the body keeps aging, the data keeps accumulating elsewhere. The platform closes books while costs still run.",
			"Aggregation without participation. Platform assembles thousands of transactions into a valuable system. Workers get paid per delivery as if each were isolated. The whole is captured; the parts are compensated.",
		},
		PoolIntermediaries: {
			"Not all intermediation is parasitic. The question is whether value capture reflects value contribution. When resellers capture more surplus than they create, that line has been crossed.",
			"Parasitic intermediation names a position, not just a behavior. Insert into transaction flow, capture value, contribute nothing to underlying activity. The scalper didn't produce the concert.",
			"Ask: What did the intermediary add? Matching? Risk absorption? Quality verification? Or just position in the flow?",
		},
		PoolAsymmetry: {
			"Information asymmetry is about knowledge. Calculative asymmetry is about processing power. You can give workers all the data and they still can't run the models. The disparity isn't in what they know, it's in what they can compute.",
			"Transparency assumes the problem is knowledge. Sometimes the problem is capacity. Disclosure doesn't fix calculative asymmetry.",
			"The platform has ML models trained on millions of transactions. The worker has intuition and a phone screen. That's not an information gap. It's an infrastructure gap.",
		},
		PoolTrust: {
			"Trust is non-fungible. Financial markets can restore confidence in prices. They cannot restore confidence in neighbors, institutions, or shared reality.",
			"Trust extraction: drawing down shared trust infrastructure the way rent-seekers draw down economic surplus. The platform captures money; the public loses capacity to rely on signals.",
			"Epistemic arbitrage: profiting from the gap between how signals are constructed and how people perceive them. Trading on the difference between constructed and perceived reality.",
		},
		PoolMarkets: {
			"Spatial derivatives attach financial instruments to non-financial domains. When prediction markets model elections, they don't just predict. They create parallel incentive structures in civic processes.",
			"An election with a liquid prediction market is not the same election without one. The instrument reshapes what it models.",
			"Trust is pre-economic. It's the condition that must exist before markets, governance, or coordination can work. Extracting from it isn't rent-seeking. It's pulling threads from the fabric everything else sits on.",
		},
		PoolRegulation: {
			"The ambiguity economy loop: Regulated domain -> reframe detaches activity -> intermediaries operationalize gap -> capital scales faster than oversight -> externalities land on public institutions. Public attention arrives at step 5.",
			"The reframe is where the money is. Hospitality not housing. Technology platform not taxi company. Marketplace not employer. Once detached from regulated category, different rules apply.",
			"Intermediaries don't create the ambiguity. They operationalize it. They build infrastructure that makes the gap usable at scale.",
		},
		PoolTemporal: {
			"Temporal asymmetry: Private capture at t0. Externalities from t1 through tn. Residual obligation at tn+1 and beyond. The people who captured value have exited by the time obligation surfaces.",
			"This is why public systems always catch up late. They're addressing obligations from past activity while new activity generates new obligations. The backlog never clears.",
			"Exit and timing: If you can capture Vp and leave before Ve accumulates and Vr surfaces, you avoid holding any obligation. The temporal structure creates the exit opportunity.",
		},
		PoolPublicMechanics: {
			"Public Mechanics: the study of how services actually function versus how they're designed to work. Every system has a gap between intention and operation. We examine that gap.",
			"Design as repair. Most work isn't creation, it's maintenance. Keeping broken systems functional through invisible labor. The people doing this rarely get credit.",
			"The formula doesn't require intent or conspiracy. Just ask: when this activity occurs, who captures, what gets pushed onto others, and what remains for the public to hold?",
		},
		PoolAutomationAuthority: {
			"This is a judgment routing question. When you automate a decision, you need to ask: What tier of authority does this decision require? Tier 0 (no human) to Tier 4 (senior leadership). The automation doesn't eliminate judgment. It just moves it.",
			"Key question: Who has signing authority when this automated decision goes wrong? Every automated system still needs a human who can override, escalate, or take accountability. That's judgment routing.",
			"Automation shifts where judgment happens, not whether it happens. You need to design: What decisions can the AI make alone (Tier 0-1)? What requires human review (Tier 2-3)? What needs senior authority (Tier 4)?",
		},
		PoolAccountability: {
			"Accountability requires authority. If no human had authority to override, that's not a system failure. That's an accountability gap baked into the design.",
			"The accountability question and the obligation question are the same question from different directions. Who decides? Who holds what remains when the decision is wrong?",
			"Without clear signing authority, you get diffusion of responsibility. Everyone assumes the AI is handling it. No one owns the outcome.",
			"If you can't explain who authorized an action six months later, you don't have a delegation problem. You have an accountability vacuum.",
		},
		PoolErrors: {
			"When automated systems fail, the question becomes: Who had authority to prevent this? Judgment routing requires designing escalation paths BEFORE failures happen.",
			"Errors reveal judgment routing failures. Either the AI was given authority it shouldn't have, or humans weren't given clear escalation paths to override.",
			"This failure happened because judgment routing wasn't designed. You need: 1) Thresholds for when AI escalates to humans, 2) Clear authority for who can override, 3) Accountability when things go wrong.",
			"Silent failures are worse than loud ones. At least with loud failures, you know something broke.",
		},
		PoolHumanInLoop: {
			"Human-in-the-loop is Tier 2 judgment routing: AI proposes, human decides. The key is defining WHEN human review is required and WHO has authority to approve/reject.",
			"Review processes are judgment routing. You're designing: What decisions need review? Who reviews? What authority do they have? Can they override or only escalate?",
			"The challenge with human review is preventing rubber-stamping. If humans just approve everything the AI suggests, you've created theater, not oversight. Judgment routing requires actual authority to reject.",
			"Humans should review exceptions, not routine decisions. Good routing makes that separation automatic.",
		},
		PoolDecisionEngineering: {
			"Prompt engineering is about outputs. Decision engineering is about authority. They're not the same thing.",
			"You can't prompt your way to institutional accountability. Better prompts won't fix missing authority boundaries. You need infrastructure.",
			"Decision engineering is making authority chains, policy constraints, and escalation rules explicit instead of implicit.",
			"When Jan passed edge cases to Steve, that was decision engineering. It was traceable. We need the same clarity when AI systems route decisions.",
			"The problem isn't making agents smarter. It's making organizational constraints machine-readable and enforceable.",
			"Infrastructure scales. Prompts drift.",
		},
		PoolAuthorityChains: {
			"Authority chains used to be visible: Jan to Bill to Steve. Now they're invisible. Judgment infrastructure makes them legible again.",
			"When you deploy an AI agent, you're granting it authority to act on your behalf. Most orgs don't treat this as an authority delegation problem. They treat it as a technical deployment problem.",
			"Delegating work to an agent is delegating authority. If you wouldn't give that authority to a summer intern without supervision, why would you give it to an agent without constraints?",
			"Agents need authority envelopes the same way employees need job descriptions. Clear scope, clear limits, clear escalation path.",
			"The question isn't 'can the agent do this?' It's 'should the agent be allowed to do this without human sign-off?'",
		},
		PoolEscalation: {
			"The 90/10 problem: 90% of decisions are routine. 10% carry outsized risk. Without routing logic, you can't tell them apart.",
			"Fast path for low-risk. Slow path for verification. Human escalation for high stakes. Specialist referral for domain mismatches. The routing happens automatically, not at agent discretion.",
			"Escalation isn't failure. It's the system working as designed.",
			"If your escalation path is 'hope the agent figures it out', you don't have an escalation path.",
			"Agents don't fail because they're bad at tasks. They fail because they encounter edge cases outside their authority and have nowhere to route them.",
		},
		PoolReceipts: {
			"Every consequential decision needs a receipt. Not for compliance theater. For institutional memory.",
			"Decision receipts link actions back to the authority that permitted them. Six months later, you know exactly why something was approved.",
			"Audit trails shouldn't require archeology. Pull the receipt, see what happened, see who authorized it.",
			"If you can't explain why an action was permitted, you're operating on institutional vibes, not documented authority.",
			"Receipts preserve memory when people leave, priorities shift, or someone asks 'why did we do that?'",
		},
		PoolConstraints: {
			"Implicit constraints aren't constraints. They're vibes.",
			"You can't audit what you didn't document. You can't document what wasn't explicit.",
			"If a constraint isn't explicit, it's not a constraint. It's a hope.",
			"Most AI systems have implicit constraints buried in training data, prompts, and developer assumptions. None of it is inspectable. None of it is enforceable.",
		},
		PoolBoundedAutonomy: {
			"Full autonomy is a fantasy. Full human-in-the-loop kills efficiency. Bounded autonomy is the real target.",
			"Agents should operate freely within constraints and escalate when they hit boundaries. That's not limiting autonomy. That's making it sustainable.",
			"Bounded autonomy means knowing exactly what agents can do alone and what requires sign-off.",
			"The boundary isn't where the agent stops being useful. It's where institutional risk exceeds delegated authority.",
			"You can't trust what you can't inspect. Judgment infrastructure makes agent decisions inspectable.",
		},
		PoolCompliance: {
			"Compliance is backward-looking. Judgment routing is forward-looking. One audits what happened. The other decides what's allowed to happen.",
			"You need both compliance and operational controls, but they're not the same thing.",
			"Compliance asks 'did we follow the rules?' Judgment routing asks 'should this execute?'",
			"Compliance frameworks don't prevent bad decisions. They document them after the fact.",
		},
		PoolFallback: {
			"Where does the value go? That's always the question. Who captured, what externalized, what obligation remains.",
			"The formula: Va = Vp + Ve + Vr. Simple to state. Harder to trace. But once you see it, you can't unsee how value distributes.",
			"Every transaction has a boundary someone drew. Ask who drew it and what falls outside.",
			"Judgment routing: Every automated decision needs a tier (0-4) and a human with signing authority at that tier. Otherwise you have authority without accountability.",
			"When designing AI systems, ask: What decisions can it make alone? What requires human oversight? Who's accountable when it's wrong? That's judgment routing.",
			"The risk isn't agents making mistakes. It's agents making decisions they shouldn't be making alone, with no escalation path built in.",
			"You can't prompt your way out of institutional accountability gaps.",
			"Most orgs are one viral edge case away from realizing their agent had no authority boundaries.",
			"Legibility isn't about dumbing things down. It's about making authority visible so it can be enforced.",
			"The goal isn't zero agent failures. It's zero unexplainable agent failures.",
		},
	}
}
